package storage

import (
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/templui/goaltracker/internal/config"
)

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path
	Delete(path string) error

	// URL returns a URL (or local path) for reading the file back
	URL(path string) string
}

// New creates the snapshot storage selected by SNAPSHOT_STORAGE.
func New(c *cfg.Config) (Storage, error) {
	switch c.SnapshotStorage {
	case cfg.SnapshotStorageLocal, "":
		slog.Info("initializing local storage", "path", c.SnapshotPath)
		return NewLocalStorage(c.SnapshotPath)
	case cfg.SnapshotStorageS3:
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:        c.S3Region,
			Bucket:        c.S3Bucket,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			Endpoint:      c.S3Endpoint,
			PresignExpiry: c.S3PresignExpiry,
		})
	default:
		return nil, fmt.Errorf("unknown snapshot storage %q", c.SnapshotStorage)
	}
}
