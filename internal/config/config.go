package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SnapshotStorageLocal = "local"
	SnapshotStorageS3    = "s3"
)

const (
	DefaultRateLimit       = 10
	DefaultRateLimitWindow = time.Minute
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Goals: "cascade" removes a goal together with its tasks,
	// "restrict" refuses to delete a goal that still has tasks.
	GoalDeletePolicy string

	// Observability (optional)
	SentryDSN string

	// Snapshots
	SnapshotStorage    string // "local" or "s3"
	SnapshotPath       string
	SnapshotOnShutdown bool
	ShutdownTimeout    time.Duration

	// Deadline digest email (goalctl digest)
	ResendAPIKey string
	EmailFrom    string
	DigestTo     string

	// Rate limiting of imports and snapshots. Counters live in Redis when
	// RedisURL is set, in process memory otherwise.
	RedisURL        string
	RateLimit       int
	RateLimitWindow time.Duration

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string        // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3PresignExpiry time.Duration // Expiry of snapshot download links - default: 1 hour
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Goal Tracker"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/goals.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		GoalDeletePolicy: envString("GOAL_DELETE_POLICY", "cascade"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Snapshots
		SnapshotStorage:    envString("SNAPSHOT_STORAGE", SnapshotStorageLocal),
		SnapshotPath:       envString("SNAPSHOT_PATH", "./data"),
		SnapshotOnShutdown: envBool("SNAPSHOT_ON_SHUTDOWN", false),
		ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Deadline digest
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		DigestTo:     envString("DIGEST_TO", ""),

		// Rate limiting
		RedisURL:        envString("REDIS_URL", ""),
		RateLimit:       envInt("RATE_LIMIT", DefaultRateLimit),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),

		S3Endpoint:      envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	// S3 credentials are only needed when snapshots go to a bucket
	if cfg.SnapshotStorage == SnapshotStorageS3 {
		cfg.S3Region = envRequired("S3_REGION")
		cfg.S3Bucket = envRequired("S3_BUCKET")
		cfg.S3AccessKey = envRequired("S3_ACCESS_KEY")
		cfg.S3SecretKey = envRequired("S3_SECRET_KEY")
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:          c.AppName,
		AppEnv:           c.AppEnv,
		Port:             c.Port,
		GoalDeletePolicy: c.GoalDeletePolicy,
		SnapshotStorage:  c.SnapshotStorage,
	}
}
