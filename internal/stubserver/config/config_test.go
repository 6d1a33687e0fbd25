package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"stubserver"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)
	t.Chdir(t.TempDir())

	got := LoadConfig()

	want := &Config{}
	want.LoadDefaults()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STUB_ADDR", ":9999")
	t.Setenv("STUB_SECRET_KEY", "from-env")
	t.Setenv("STUB_MAX_LOGIN_ATTEMPTS", "3")
	withArgs(t, "-s", "from-flag", "-t", "15", "-unknown", "x")

	got := LoadConfig()

	require.Equal(t, ":9999", got.Addr)
	require.Equal(t, "from-flag", got.SecretKey)
	require.Equal(t, 3, got.MaxLoginAttempts)
	require.Equal(t, 15*time.Minute, got.TokenValidity)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env.local", []byte("STUB_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STUB_LOG_LEVEL") })
	withArgs(t)

	require.Equal(t, "debug", LoadConfig().LogLevel)
}

func TestLoadConfig_BadAttemptsPanics(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STUB_MAX_LOGIN_ATTEMPTS", "many")
	withArgs(t)

	require.Panics(t, func() { LoadConfig() })
}
