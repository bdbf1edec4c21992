package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 20, cfg.Pool.Calibration)
	assert.Equal(t, 0.15, cfg.Pool.Exploration)
	assert.Equal(t, 15*time.Minute, cfg.Cleanup.Interval)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingo.yaml")
	content := "mode: prod\nhttp:\n  addr: \":9090\"\npool:\n  calibration: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Mode)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 30, cfg.Pool.Calibration)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.15, cfg.Pool.Exploration)
}

func TestLoad_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600))
	t.Setenv("LINGO_HTTP_ADDR", ":7070")
	t.Setenv("LINGO_LLM_PROVIDER", "mock")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load("/does/not/exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}
