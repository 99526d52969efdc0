package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/wellnest/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTestimonial_CountsCharactersNotBytes(t *testing.T) {
	// each "é" is two bytes; 200 of them are still 200 characters
	multibyte := strings.Repeat("é", maxTestimonialLen)
	require.Greater(t, len(multibyte), maxTestimonialLen)
	assert.NoError(t, validateTestimonial(multibyte))

	assert.ErrorIs(t, validateTestimonial(multibyte+"é"), common.ErrValidation)
	assert.ErrorIs(t, validateTestimonial(""), common.ErrValidation)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, validateLogin("sam", []byte("pass1")))
	assert.ErrorIs(t, validateLogin("", []byte("pass1")), common.ErrValidation)
	assert.ErrorIs(t, validateLogin("sam", nil), common.ErrValidation)
}

func TestSplitSymptoms(t *testing.T) {
	assert.Equal(t, []string{"headache", "fatigue"}, splitSymptoms(" headache , fatigue ,"))
	assert.Nil(t, splitSymptoms("  ,  "))
}
