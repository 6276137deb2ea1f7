package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-ops/internal/config/configs"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, configs.DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 30, cfg.Ledger.DefaultDueDays)
	assert.Equal(t, 3, cfg.Ledger.WriteRetries)
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "mongo")
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("AUTH_SECRET", "test-secret")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=sqlite\nSQLITE_PATH=/tmp/ops.db\nLEDGER_DEFAULT_DUE_DAYS=14\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("STORE_DRIVER")
		_ = os.Unsetenv("SQLITE_PATH")
		_ = os.Unsetenv("LEDGER_DEFAULT_DUE_DAYS")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, configs.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/ops.db", cfg.SQLite.Path)
	assert.Equal(t, 14, cfg.Ledger.DefaultDueDays)
}

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
	assert.Equal(t, "WARN", configs.Logger{Level: "warning"}.SlogLevel().String())
}
