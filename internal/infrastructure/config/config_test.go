package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "mapview")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "mapview")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, 720*time.Hour, cfg.JWT.ViewTokenTTL)
		assert.Equal(t, "mapview.region", cfg.NATS.SubjectPrefix)
		assert.True(t, cfg.Observers.CacheEnabled)
		assert.False(t, cfg.Observers.ArchiveEnabled)
		assert.Equal(t, 64, cfg.Observers.ArchiveQueueSize)
		assert.Equal(t, 4096, cfg.Tiles.MaxTiles)
		assert.Equal(t, 64, cfg.Tiles.MaxCells)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
	})

	t.Run("reads overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("OBSERVER_PUBLISH_ENABLED", "true")
		t.Setenv("TILES_MAX_TILES", "10")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.True(t, cfg.Observers.PublishEnabled)
		assert.Equal(t, 10, cfg.Tiles.MaxTiles)
	})

	t.Run("fails without jwt secret", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("JWT_SECRET_KEY"))

		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
