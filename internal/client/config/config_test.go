package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://luca-app-dev.onrender.com", c.BaseURL)
	assert.Equal(t, 60*time.Second, c.RequestTimeout)
	assert.Equal(t, "luca.db", c.SecretsPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"luca"}

	for _, k := range []string{"LUCA_BASE_URL", "LUCA_REQUEST_TIMEOUT", "LUCA_SECRETS_PATH", "LUCA_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "https://luca-app-dev.onrender.com", cfg.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("LUCA_BASE_URL", "http://127.0.0.1:8000")
	t.Setenv("LUCA_REQUEST_TIMEOUT", "5s")
	t.Setenv("LUCA_SECRETS_PATH", "/tmp/luca-test.db")
	t.Setenv("LUCA_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/luca-test.db", cfg.SecretsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_BadTimeoutPanics(t *testing.T) {
	t.Setenv("LUCA_REQUEST_TIMEOUT", "forever")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}

func TestLoadConfig_KeepsSubSecondTimeout(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, d := range []time.Duration{1500 * time.Millisecond, 500 * time.Millisecond} {
		os.Args = []string{"luca"}
		t.Setenv("LUCA_REQUEST_TIMEOUT", d.String())

		cfg := LoadConfig()
		assert.Equal(t, d, cfg.RequestTimeout)
	}

	os.Args = []string{"luca", "-t", "3"}
	t.Setenv("LUCA_REQUEST_TIMEOUT", "500ms")
	assert.Equal(t, 3*time.Second, LoadConfig().RequestTimeout)
}
