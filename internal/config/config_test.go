package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/constructor-demos/internal/config"
)

// unsetenv clears key for the duration of the test. t.Setenv registers
// the restore; Unsetenv then removes the variable entirely.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "CONFIG_PATH")
	unsetenv(t, "ENV")
	unsetenv(t, "LOG_LEVEL")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	unsetenv(t, "CONFIG_PATH")
	t.Setenv("ENV", "dev")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromFlag(t *testing.T) {
	unsetenv(t, "CONFIG_PATH")
	unsetenv(t, "ENV")
	unsetenv(t, "LOG_LEVEL")
	path := writeConfig(t, "env: staging\nlog_level: error\n")

	cfg, err := config.Load([]string{"--config=" + path})
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfigPathWinsOverFlag(t *testing.T) {
	unsetenv(t, "ENV")
	unsetenv(t, "LOG_LEVEL")
	t.Setenv("CONFIG_PATH", writeConfig(t, "env: dev\n"))
	other := writeConfig(t, "env: staging\n")

	cfg, err := config.Load([]string{"--config=" + other})
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		unsetenv(t, "ENV")
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := config.Load(nil)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("unknown env", func(t *testing.T) {
		unsetenv(t, "CONFIG_PATH")
		t.Setenv("ENV", "qa")

		_, err := config.Load(nil)
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		unsetenv(t, "CONFIG_PATH")
		t.Setenv("ENV", "dev")
		t.Setenv("LOG_LEVEL", "loud")

		_, err := config.Load(nil)
		assert.Error(t, err)
	})

	t.Run("bad flag", func(t *testing.T) {
		unsetenv(t, "CONFIG_PATH")

		_, err := config.Load([]string{"--verbose"})
		assert.Error(t, err)
	})
}
