// Package config loads runtime configuration for the Luca CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: .env.local and .env are loaded with godotenv (existing
//     variables win), then LUCA_BASE_URL, LUCA_REQUEST_TIMEOUT,
//     LUCA_SECRETS_PATH and LUCA_LOG_LEVEL are applied.
//  3. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are parsed as YAML, anything else as JSON.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-t int      request timeout (seconds)
//	-s string   path of the secret store database
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work:
//
//	base_url: https://luca-app-dev.onrender.com
//	request_timeout: 30s
//	secrets_path: luca.db
//	log_level: info
package config
