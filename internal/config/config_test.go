package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("STORAGE_ROOT", "/var/lib/docstore")
	os.Setenv("DEFAULT_OWNER_ID", "7")
	defer os.Unsetenv("DB_MAX_OPEN_CONNS")
	defer os.Unsetenv("STORAGE_ROOT")
	defer os.Unsetenv("DEFAULT_OWNER_ID")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/var/lib/docstore", cfg.Storage.Root)
	assert.Equal(t, int64(7), cfg.DefaultOwnerID)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("STORAGE_ROOT")
	os.Unsetenv("DEFAULT_OWNER_ID")

	cfg := Load()

	assert.Equal(t, "uploads", cfg.Storage.Root)
	assert.Equal(t, int64(1), cfg.DefaultOwnerID)
	assert.Equal(t, 32<<20, cfg.MaxUploadBytes)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	os.Setenv(key, "42")
	assert.Equal(t, int64(42), getEnvInt64(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, int64(3), getEnvInt64(key, 3))

	os.Unsetenv(key)
	assert.Equal(t, int64(3), getEnvInt64(key, 3))
}
