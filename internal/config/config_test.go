package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	LoadDefault()

	assert.Equal(t, "info", Logger().Level)
	assert.Equal(t, "console", Logger().Format)
	assert.Equal(t, "0.0.0.0", Http().Host)
	assert.Equal(t, 3000, Http().Port)
	assert.Equal(t, "data/app.db", Sqlite().Path)
}

func TestLoadFromFileMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rmstack.yaml")
	content := []byte(`common:
  http:
    port: 8080
  sqlite:
    path: /tmp/test.db
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	require.NoError(t, LoadFromFile(path))

	assert.Equal(t, 8080, Http().Port)
	assert.Equal(t, "/tmp/test.db", Sqlite().Path)
	// Untouched values keep their defaults.
	assert.Equal(t, "0.0.0.0", Http().Host)
	assert.Equal(t, "info", Logger().Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesWin(t *testing.T) {
	LoadDefault()

	t.Setenv("RMSTACK_HTTP_PORT", "9999")
	t.Setenv("RMSTACK_SQLITE_PATH", "elsewhere.db")
	t.Setenv("RMSTACK_LOG_LEVEL", "debug")

	ApplyEnvOverrides()

	assert.Equal(t, 9999, Http().Port)
	assert.Equal(t, "elsewhere.db", Sqlite().Path)
	assert.Equal(t, "debug", Logger().Level)
}

func TestSqliteDSN(t *testing.T) {
	LoadDefault()
	assert.Equal(t, "file:data/app.db?cache=shared", Sqlite().DSN())
}
