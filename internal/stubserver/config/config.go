// Package config handles configuration for the local stub backend:
// defaults, then environment (with dotenv files), then command-line flags.
package config

import "time"

// Config holds runtime settings for the stub backend.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing session JWTs (HS256).
//   - TokenValidity: lifetime of a session token.
//   - ResetTokenValidity: lifetime of a password reset token.
//   - MaxLoginAttempts / LockoutDuration: failed logins tolerated per email
//     before login answers 429, and how long the lockout lasts.
//   - MinimumAge: youngest age accepted at registration, in years.
//   - RequestsPerSecond / Burst: per-client request throttle.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr               string
	SecretKey          string
	TokenValidity      time.Duration
	ResetTokenValidity time.Duration
	MaxLoginAttempts   int
	LockoutDuration    time.Duration
	MinimumAge         int
	RequestsPerSecond  float64
	Burst              int
	LogLevel           string
}

// LoadDefaults populates c with development defaults.
// NOTE: the secret key is not meant for anything but local runs.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.ResetTokenValidity = time.Hour
	c.MaxLoginAttempts = 5
	c.LockoutDuration = 5 * time.Minute
	c.MinimumAge = 20
	c.RequestsPerSecond = 20
	c.Burst = 40
	c.LogLevel = "info"
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
