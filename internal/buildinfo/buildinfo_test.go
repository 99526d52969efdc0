package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData_DefaultValues(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}
