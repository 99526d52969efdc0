package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wellnest/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing; zero values are skipped so a
// partial file only overrides what it names.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	WindowDays   int    `json:"window_days"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given, nothing is loaded. Read or unmarshal errors panic, since a
// named config file that cannot be used is a startup misconfiguration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.WindowDays > 0 {
		cfg.WindowDays = jc.WindowDays
	}
}
