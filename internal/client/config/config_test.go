package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5005", c.ServerURL)
	assert.Equal(t, "videogenius.db", c.DBPath)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
	assert.Equal(t, "form", c.TextEncoding)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5005", cfg.ServerURL)
	assert.Equal(t, "videogenius.db", cfg.DBPath)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("VG_SERVER_URL=http://dotenv:1\nVG_LOG_LEVEL=warn\nVG_DB_PATH=env.db\n"), 0o600))
	require.NoError(t, os.WriteFile("cfg.yaml", []byte("log_level: debug\nrequest_timeout: 20s\n"), 0o600))
	t.Setenv(EnvDBPath, "process.db")

	os.Args = []string{"testbin", "-c", "cfg.yaml", "-t", "5"}
	cfg := LoadConfig()

	assert.Equal(t, "http://dotenv:1", cfg.ServerURL)
	assert.Equal(t, "process.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
