package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "PORT", "DB_DRIVER", "DB_CONNECTION", "GOAL_DELETE_POLICY", "SNAPSHOT_STORAGE", "SHUTDOWN_TIMEOUT", "SNAPSHOT_ON_SHUTDOWN", "REDIS_URL", "RATE_LIMIT", "RATE_LIMIT_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "Goal Tracker", cfg.AppName)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Contains(t, cfg.DBConnection, "foreign_keys(1)")
	assert.Equal(t, "cascade", cfg.GoalDeletePolicy)
	assert.Equal(t, SnapshotStorageLocal, cfg.SnapshotStorage)
	assert.False(t, cfg.SnapshotOnShutdown)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.S3Bucket)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GOAL_DELETE_POLICY", "restrict")
	t.Setenv("SNAPSHOT_ON_SHUTDOWN", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT", "-3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "restrict", cfg.GoalDeletePolicy)
	assert.True(t, cfg.SnapshotOnShutdown)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestSanitizedDropsCredentials(t *testing.T) {
	cfg := &Config{AppName: "Goals", S3AccessKey: "key", S3SecretKey: "secret", SentryDSN: "dsn"}

	safe := cfg.Sanitized()

	assert.Equal(t, "Goals", safe.AppName)
	assert.Empty(t, safe.S3AccessKey)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.SentryDSN)
}
