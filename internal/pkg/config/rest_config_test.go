//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	path := writeConfigFile(t, `
port: 8080
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: "file::memory:?cache=shared"
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	path := writeConfigFile(t, `
port: 8080
logger:
  log_level: info
  log_type: console
database:
  type: oracle
  dsn: "whatever"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
