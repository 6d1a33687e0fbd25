package config

import "time"

// Config holds runtime settings for the Luca CLI.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SecretsPath    string
	LogLevel       string
}

// LoadDefaults populates c with defaults pointing at the hosted dev backend.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://luca-app-dev.onrender.com"
	c.RequestTimeout = 60 * time.Second
	c.SecretsPath = "luca.db"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, environment, config file and flags in that
// order. Malformed values panic, as nothing sensible can run without them.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
