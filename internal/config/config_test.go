package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultWeights, cfg.Weights)
	assert.Equal(t, DefaultMaxInputChars, cfg.MaxInputChars)
	assert.Equal(t, []string{".txt", ".md"}, cfg.Scan.Extensions)
	assert.Equal(t, 4, cfg.Scan.Concurrency)
	assert.Equal(t, 2*time.Second, cfg.Watch.Interval)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width)
	assert.False(t, cfg.Parallel)
	assert.Empty(t, cfg.LexiconFile)
	assert.Equal(t, "127.0.0.1:8080", cfg.Serve.Addr)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
weights:
  structure: 0.2
  keywords: 0.2
  personalisation: 0.2
  action_verbs: 0.2
  readability: 0.2
max_input_chars: 5000
parallel: true
scan:
  extensions: [".TXT"]
  concurrency: 8
watch:
  interval: 500ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Weights.Keywords)
	assert.Equal(t, 5000, cfg.MaxInputChars)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, []string{".txt"}, cfg.Scan.Extensions)
	assert.Equal(t, 8, cfg.Scan.Concurrency)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Interval)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LETTERGRADE_MAX_INPUT_CHARS", "1234")
	t.Setenv("LETTERGRADE_OUTPUT_WIDTH", "100")
	t.Setenv("LETTERGRADE_SERVE_ADDR", ":9090")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.MaxInputChars)
	assert.Equal(t, 100, cfg.Output.Width)
	assert.Equal(t, ":9090", cfg.Serve.Addr)
}

func TestLoad_InvalidWeights(t *testing.T) {
	path := writeConfig(t, `
weights:
  keywords: 0.9
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestLoad_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero concurrency", "scan:\n  concurrency: 0\n"},
		{"extension without dot", "scan:\n  extensions: [\"txt\"]\n"},
		{"tiny interval", "watch:\n  interval: 1ms\n"},
		{"narrow output", "output:\n  width: 10\n"},
		{"negative cap", "max_input_chars: -1\n"},
		{"empty serve addr", "serve:\n  addr: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "weights: [unterminated"))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "letters"), expandPath("~/letters"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "", expandPath(""))
}
