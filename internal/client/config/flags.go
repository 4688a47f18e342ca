package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/hackline/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the API server
//	-t string   request timeout (time.ParseDuration syntax)
//	-d string   session database path
//	-i string   health check interval (time.ParseDuration syntax)
//
// Arguments are pre-filtered with flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "base URL of the API server")
	timeout := fs.String("t", cfg.RequestTimeout.String(), "request timeout")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	interval := fs.String("i", cfg.HealthCheckInterval.String(), "health check interval")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = mustDuration(*timeout)
	cfg.HealthCheckInterval = mustDuration(*interval)
}

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
