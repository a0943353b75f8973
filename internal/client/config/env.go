package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by parseEnv.
const (
	EnvServerURL      = "VG_SERVER_URL"
	EnvDBPath         = "VG_DB_PATH"
	EnvRequestTimeout = "VG_REQUEST_TIMEOUT"
	EnvTextEncoding   = "VG_TEXT_ENCODING"
	EnvLogLevel       = "VG_LOG_LEVEL"
	EnvLogFormat      = "VG_LOG_FORMAT"
)

// parseEnv overlays Config with VG_* variables. Values from envFile (a
// dotenv file, optional) are used only where the process environment does
// not set the same variable. Panics on a malformed file or timeout.
func parseEnv(cfg *Config, envFile string) {
	fromFile := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fromFile = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			panic(err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFile[key]
		return v, ok
	}

	if v, ok := lookup(EnvServerURL); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvTextEncoding); ok && v != "" {
		cfg.TextEncoding = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
}
