package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(EnvAPIURL, "http://env:5000")
		t.Setenv(EnvDBPath, "env.db")
		t.Setenv(EnvLogLevel, "")

		cfg := defaults()
		parseEnv(&cfg, nil)

		assert.Equal(t, "http://env:5000", cfg.APIBaseURL)
		assert.Equal(t, "env.db", cfg.DatabasePath)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("explicit env file is loaded", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		// registered so t.Setenv restores the variable after godotenv sets it
		t.Setenv(EnvLogLevel, "")
		require.NoError(t, os.Unsetenv(EnvLogLevel))

		path := filepath.Join(dir, "diary.env")
		require.NoError(t, os.WriteFile(path, []byte("DIARY_LOG_LEVEL=debug\n"), 0o600))

		cfg := defaults()
		parseEnv(&cfg, []string{"-e", path})
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg := defaults()
		require.NotPanics(t, func() { parseEnv(&cfg, nil) })
	})

	t.Run("missing explicit file panics", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg := defaults()
		require.Panics(t, func() { parseEnv(&cfg, []string{"-env", "absent.env"}) })
	})
}
