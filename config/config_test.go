package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("DefaultsForMissingKeys", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "[App]\nPort = 8080\n"))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.App.Port)
		assert.Equal(t, "0.0.0.0", cfg.App.Host)
		assert.Equal(t, "/api", cfg.App.BasePath)
		assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	})

	t.Run("FullFile", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
[App]
Host = "127.0.0.1"
Port = 3001
base_path = ""

[Storage]
Driver = "redis"
reset_on_start = true

[Redis]
Addr = "redis:6379"
DB = 2
Prefix = "test"
`))
		require.NoError(t, err)

		assert.Equal(t, "", cfg.App.BasePath)
		assert.Equal(t, DriverRedis, cfg.Storage.Driver)
		assert.True(t, cfg.Storage.ResetOnStart)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, "test", cfg.Redis.Prefix)
	})

	t.Run("DatabaseURL", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
[Storage]
Driver = "postgres"
database_url = "postgres://reader:secret@db:5433/campus?sslmode=disable"
`))
		require.NoError(t, err)

		assert.Equal(t, "db:5433", cfg.Database.Addr)
		assert.Equal(t, "reader", cfg.Database.User)
		assert.Equal(t, "secret", cfg.Database.Password)
		assert.Equal(t, "campus", cfg.Database.Database)
		assert.Equal(t, 3, cfg.Database.MaxRetries)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[Storage]\nDriver = \"sqlite\"\n"))
		assert.ErrorContains(t, err, "unknown storage driver")
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.App.Port = 0
	cfg.Storage.Driver = ""
	err := cfg.Validate()
	assert.ErrorContains(t, err, "app.port")
	assert.ErrorContains(t, err, "storage driver")
}
