package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/templui/goaltracker/internal/config"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	require.NoError(t, store.Save("snapshots/one.json", strings.NewReader(`{"goals":[]}`)))

	location := store.URL("snapshots/one.json")
	assert.Equal(t, filepath.Join(root, "snapshots", "one.json"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, `{"goals":[]}`, string(data))

	require.NoError(t, store.Delete("snapshots/one.json"))
	_, err = os.Stat(location)
	assert.True(t, os.IsNotExist(err))

	// deleting twice is not an error
	assert.NoError(t, store.Delete("snapshots/one.json"))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, path := range []string{"../outside.json", "/etc/passwd", "a/../../b", ""} {
		err := store.Save(path, strings.NewReader("x"))
		assert.True(t, errors.Is(err, ErrInvalidPath), path)
	}
}

func TestNewSelectsStorage(t *testing.T) {
	store, err := New(&cfg.Config{SnapshotStorage: cfg.SnapshotStorageLocal, SnapshotPath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, store)

	_, err = New(&cfg.Config{SnapshotStorage: "ftp"})
	assert.Error(t, err)
}

func TestObjectBaseURL(t *testing.T) {
	assert.Equal(t, "https://goals.s3.eu-central-1.amazonaws.com", objectBaseURL("", "goals", "eu-central-1"))
	assert.Equal(t, "http://localhost:9000/goals", objectBaseURL("http://localhost:9000/", "goals", "us-east-1"))
}
