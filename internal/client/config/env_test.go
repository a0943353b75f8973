package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Run("process environment", func(t *testing.T) {
		t.Setenv(EnvServerURL, "https://api.example.com")
		t.Setenv(EnvDBPath, "/var/lib/vg/session.db")
		t.Setenv(EnvRequestTimeout, "45s")
		t.Setenv(EnvTextEncoding, "json")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "console")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg, "")

		want := &Config{
			ServerURL:      "https://api.example.com",
			DBPath:         "/var/lib/vg/session.db",
			RequestTimeout: 45 * time.Second,
			TextEncoding:   "json",
			LogLevel:       "debug",
			LogFormat:      "console",
		}
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("dotenv file fills gaps only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("VG_SERVER_URL=http://from-file:1\nVG_LOG_FORMAT=json\n"), 0o600))
		t.Setenv(EnvServerURL, "http://from-env:2")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg, path)

		assert.Equal(t, "http://from-env:2", cfg.ServerURL)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("missing dotenv file is fine", func(t *testing.T) {
		cfg := &Config{LogLevel: "info"}
		require.NotPanics(t, func() { parseEnv(cfg, filepath.Join(t.TempDir(), ".env")) })
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")

		cfg := &Config{LogLevel: "info"}
		parseEnv(cfg, "")
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("bad timeout panics", func(t *testing.T) {
		t.Setenv(EnvRequestTimeout, "soon")
		require.Panics(t, func() { parseEnv(&Config{}, "") })
	})
}
