package config

import "time"

// Config holds runtime settings for the hackline CLI.
//
// Fields:
//   - ServerAddr: base URL of the link-sharing API.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the local SQLite session database.
//   - HealthCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerAddr          string
	RequestTimeout      time.Duration
	SessionDBPath       string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "hackline.db"
	c.HealthCheckInterval = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
