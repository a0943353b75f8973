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

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		preset      *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"-a", "http://127.0.0.1:9090", "-d", "s.db", "-t", "10", "-l", "debug"}, expectPanic: false,
			expected: &Config{ServerURL: "http://127.0.0.1:9090", DBPath: "s.db", RequestTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "Test2 foreign flags ignored", args: []string{"-c", "cfg.json", "-a", "http://h:1"}, expectPanic: false,
			expected: &Config{ServerURL: "http://h:1"}},
		{name: "Test3 incorrect timeout", args: []string{"-a", "http://127.0.0.1:9090", "-t", "abc"}, expectPanic: true, expected: &Config{}},
		{name: "Test4 negative timeout", args: []string{"-t", "-5"}, expectPanic: true, expected: &Config{}},
		{name: "Test5 timeout kept without -t", preset: &Config{RequestTimeout: 2500 * time.Millisecond}, args: []string{"-a", "http://h:1"}, expectPanic: false,
			expected: &Config{ServerURL: "http://h:1", RequestTimeout: 2500 * time.Millisecond}},
		{name: "Test6 explicit zero timeout", preset: &Config{RequestTimeout: time.Minute}, args: []string{"-t", "0"}, expectPanic: false,
			expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			if tt.preset != nil {
				*config = *tt.preset
			}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout: 500ms\n"), 0o600))
	args := []string{"-c", path}

	cfg := &Config{}
	parseFile(cfg, args)
	require.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)

	parseFlags(cfg, args)
	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
}
