// Package config assembles runtime settings for the shopkeeper CLI from
// defaults, an optional .env file / environment variables, an optional JSON
// file, and command-line flags, in that order. Later sources win.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite store.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "shop.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), JSON (if
// present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
