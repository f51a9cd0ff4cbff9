package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "ws://localhost:8000", cfg.Server.URL)
	assert.Empty(t, cfg.Server.SessionID)
	assert.Equal(t, 1280, cfg.Graphics.Width)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Greater(t, cfg.Controls.MoveSpeed, float32(0))
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  url: ws://dream.example:9000
graphics:
  width: 1920
  fullscreen: true
`), 0o644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, path))

	assert.Equal(t, "ws://dream.example:9000", cfg.Server.URL)
	assert.Equal(t, 1920, cfg.Graphics.Width)
	assert.True(t, cfg.Graphics.Fullscreen)
	// Untouched sections keep their defaults.
	assert.Equal(t, 720, cfg.Graphics.Height)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DREAMSCAPE_SERVER", "ws://env.example:7777")
	t.Setenv("DREAMSCAPE_SESSION", "env-session")

	cfg := Default()
	applyEnv(cfg)

	assert.Equal(t, "ws://env.example:7777", cfg.Server.URL)
	assert.Equal(t, "env-session", cfg.Server.SessionID)
}

func TestDotEnvParsing(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# comment
DREAMTEST_PLAIN=value
DREAMTEST_QUOTED="quoted value"
DREAMTEST_SINGLE='single'
not-a-pair
=nokey
`), 0o644))

	t.Setenv("DREAMTEST_PLAIN", "")
	os.Unsetenv("DREAMTEST_PLAIN")
	t.Setenv("DREAMTEST_QUOTED", "")
	os.Unsetenv("DREAMTEST_QUOTED")
	t.Setenv("DREAMTEST_SINGLE", "")
	os.Unsetenv("DREAMTEST_SINGLE")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "value", os.Getenv("DREAMTEST_PLAIN"))
	assert.Equal(t, "quoted value", os.Getenv("DREAMTEST_QUOTED"))
	assert.Equal(t, "single", os.Getenv("DREAMTEST_SINGLE"))
}

func TestDotEnvDoesNotClobberExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DREAMTEST_KEEP=from-file\n"), 0o644))

	t.Setenv("DREAMTEST_KEEP", "from-env")
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("DREAMTEST_KEEP"))
}

func TestDotEnvMissingFileIsFine(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
