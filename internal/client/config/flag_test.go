package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		start       *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-a", "http://127.0.0.1:8000", "-t", "10", "-s", "x.db", "-l", "debug"},
			expected: &Config{BaseURL: "http://127.0.0.1:8000", RequestTimeout: 10 * time.Second, SecretsPath: "x.db", LogLevel: "debug"},
		},
		{
			name:     "config flag is ignored",
			args:     []string{"cmd", "-c", "luca.yaml", "-a", "http://h"},
			expected: &Config{BaseURL: "http://h"},
		},
		{
			name:     "timeout untouched without -t",
			args:     []string{"cmd", "-l", "warn"},
			start:    &Config{RequestTimeout: 750 * time.Millisecond},
			expected: &Config{RequestTimeout: 750 * time.Millisecond, LogLevel: "warn"},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}
			if tt.start != nil {
				*cfg = *tt.start
			}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
