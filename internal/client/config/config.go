package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the VideoGenius CLI.
//
// Fields:
//   - ServerURL: base URL of the VideoGenius server; the /api prefix is added by the client.
//   - DBPath: SQLite file holding the persisted session.
//   - RequestTimeout: transport timeout per request, zero means none.
//   - TextEncoding: body encoding of text-mode submissions, "form" or "json".
//   - LogLevel, LogFormat: see the logging package.
type Config struct {
	ServerURL      string
	DBPath         string
	RequestTimeout time.Duration
	TextEncoding   string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5005"
	c.DBPath = "videogenius.db"
	c.RequestTimeout = 0
	c.TextEncoding = "form"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (.env file included), a config file and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
