package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/luca/internal/flagx"
	"github.com/dmitrijs2005/luca/internal/timex"
	"github.com/goccy/go-yaml"
)

// FileConfig is the on-disk shape of the config file. Empty fields leave the
// current value untouched.
type FileConfig struct {
	BaseURL        string         `json:"base_url" yaml:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SecretsPath    string         `json:"secrets_path" yaml:"secrets_path"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SecretsPath != "" {
		cfg.SecretsPath = fc.SecretsPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
