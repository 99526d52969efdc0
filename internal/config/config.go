// Package config loads runtime settings for the WellNest CLI.
package config

// Config holds runtime settings for the WellNest CLI.
//
// Fields:
//   - DatabasePath: SQLite DSN/path of the local store.
//   - WindowDays: size of the rolling summary window in calendar days.
type Config struct {
	DatabasePath string
	WindowDays   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "wellnest.db"
	c.WindowDays = 7
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
