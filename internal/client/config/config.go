// Package config loads runtime settings for the Eye Glaze CLI.
//
// Sources are applied in order, later ones winning: built-in defaults, a
// JSON file (-c/-config), environment variables (optionally from .env), and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - BackendBaseURL: base URL of the Eye Glaze REST backend.
//   - MLBaseURL: base URL of the ML prediction service.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseFile: path of the local sqlite database.
type Config struct {
	BackendBaseURL string
	MLBaseURL      string
	RequestTimeout time.Duration
	DatabaseFile   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://localhost:5174"
	c.MLBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseFile = "eyeglaze.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON, the environment, and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
