package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays STUB_* variables after loading .env.local if present.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(".env.local")

	if v, ok := os.LookupEnv("STUB_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("STUB_SECRET_KEY"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("STUB_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("STUB_MAX_LOGIN_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.MaxLoginAttempts = n
	}
}
