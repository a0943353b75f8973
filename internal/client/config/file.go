package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/videogenius/internal/flagx"
	"github.com/dmitrijs2005/videogenius/internal/timex"
	"github.com/goccy/go-yaml"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Durations go through timex.Duration so files may say "30s" or give
// integer nanoseconds. Absent keys leave the current value alone.
type FileConfig struct {
	ServerURL      string          `json:"server_url" yaml:"server_url"`
	DBPath         string          `json:"db_path" yaml:"db_path"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	TextEncoding   string          `json:"text_encoding" yaml:"text_encoding"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
	LogFormat      string          `json:"log_format" yaml:"log_format"`
}

// parseFile overlays Config with the file named by -c or -config. Files
// ending in .yaml or .yml are read as YAML, everything else as JSON.
// Panics on read or unmarshal errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
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
		panic(fmt.Errorf("parse %s: %w", path, err))
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.TextEncoding != "" {
		cfg.TextEncoding = fc.TextEncoding
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
}
