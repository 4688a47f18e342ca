package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    Config
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://api.example:9090", "-t", "5s", "-d", "custom.db", "-i", "30s"},
			expected: Config{
				ServerAddr:          "http://api.example:9090",
				RequestTimeout:      5 * time.Second,
				SessionDBPath:       "custom.db",
				HealthCheckInterval: 30 * time.Second,
			},
		},
		{
			name:        "invalid timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
