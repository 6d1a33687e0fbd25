package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env.local", ".env"}

// parseEnv loads dotenv files (missing ones are skipped) and overlays the
// LUCA_* variables that are set.
func parseEnv(cfg *Config) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	if v, ok := os.LookupEnv("LUCA_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("LUCA_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv("LUCA_SECRETS_PATH"); ok {
		cfg.SecretsPath = v
	}
	if v, ok := os.LookupEnv("LUCA_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
