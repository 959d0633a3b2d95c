package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, "gpt-3.5-turbo-0125", cfg.Model)
	assert.Equal(t, "scraped_discourse_data.json", cfg.DataFile)
	assert.Equal(t, 123, cfg.Discourse.CategoryID)
	assert.Equal(t, 10, cfg.Discourse.MaxPages)
	assert.Equal(t, 500*time.Millisecond, cfg.Discourse.FetchDelay)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte("port: \"9000\"\nai_provider: gemini\ndiscourse:\n  max_pages: 2\n  fetch_delay: 10ms\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, 2, cfg.Discourse.MaxPages)
	assert.Equal(t, 10*time.Millisecond, cfg.Discourse.FetchDelay)
	// untouched keys keep their defaults
	assert.Equal(t, 123, cfg.Discourse.CategoryID)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8123")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8123", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}
