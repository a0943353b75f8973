package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathJSON := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_url":      "http://www.example:9000",
		"request_timeout": "10s",
		"text_encoding":   "json",
	})

	t.Run("loads json", func(t *testing.T) {
		cfg := &Config{LogLevel: "info"}
		parseFile(cfg, []string{"-config", pathJSON})

		assert.Equal(t, "http://www.example:9000", cfg.ServerURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "json", cfg.TextEncoding)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep their value")
	})

	t.Run("loads yaml", func(t *testing.T) {
		path := filepath.Join(dir, "cfg.yml")
		require.NoError(t, os.WriteFile(path, []byte(
			"server_url: https://vg.example\ndb_path: /tmp/vg.db\nrequest_timeout: 1m\nlog_format: console\n"), 0o600))

		cfg := &Config{}
		parseFile(cfg, []string{"-a", "ignored", "-c", path})

		assert.Equal(t, "https://vg.example", cfg.ServerURL)
		assert.Equal(t, "/tmp/vg.db", cfg.DBPath)
		assert.Equal(t, time.Minute, cfg.RequestTimeout)
		assert.Equal(t, "console", cfg.LogFormat)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		cfg := &Config{
			ServerURL:      "http://defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		parseFile(cfg, nil)

		assert.Equal(t, "http://defaults:1234", cfg.ServerURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseFile(&Config{}, []string{"-config", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
