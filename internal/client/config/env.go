package config

import "github.com/caarlos0/env/v6"

// envConfig is a DTO for environment parsing. Unset variables leave the
// corresponding Config field untouched.
type envConfig struct {
	ServerAddr          string `env:"HACKLINE_SERVER_ADDR"`
	RequestTimeout      string `env:"HACKLINE_REQUEST_TIMEOUT"`
	SessionDBPath       string `env:"HACKLINE_SESSION_DB"`
	HealthCheckInterval string `env:"HACKLINE_HEALTH_INTERVAL"`
}

// parseEnv overlays cfg with values from the environment. Durations use
// time.ParseDuration syntax ("10s", "1m"). Parse errors panic, matching the
// JSON source.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerAddr != "" {
		cfg.ServerAddr = ec.ServerAddr
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
	if ec.RequestTimeout != "" {
		cfg.RequestTimeout = mustDuration(ec.RequestTimeout)
	}
	if ec.HealthCheckInterval != "" {
		cfg.HealthCheckInterval = mustDuration(ec.HealthCheckInterval)
	}
}
