package preference_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"flatacuties/core/preference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type brokenStore struct{}

func (brokenStore) Load() (string, error) { return "", errors.New("disk on fire") }
func (brokenStore) Save(string) error     { return errors.New("disk on fire") }

func TestResolve(t *testing.T) {
	logger := zap.NewNop()
	const fallback = "http://localhost:3000"

	t.Run("DefaultWhenNothingStored", func(t *testing.T) {
		store := &preference.MemoryStore{}
		assert.Equal(t, fallback, preference.Resolve("", store, fallback, logger))
	})

	t.Run("OverrideWinsAndIsRemembered", func(t *testing.T) {
		store := &preference.MemoryStore{}
		_ = store.Save("http://stored:1")

		got := preference.Resolve("http://override:2/", store, fallback, logger)
		assert.Equal(t, "http://override:2", got)

		stored, _ := store.Load()
		assert.Equal(t, "http://override:2/", stored)
	})

	t.Run("StoredBeatsDefault", func(t *testing.T) {
		store := &preference.MemoryStore{}
		_ = store.Save("http://stored:1/")
		assert.Equal(t, "http://stored:1", preference.Resolve("", store, fallback, logger))
	})

	t.Run("BrokenStoreFallsThrough", func(t *testing.T) {
		assert.Equal(t, fallback, preference.Resolve("", brokenStore{}, fallback+"/", logger))
		assert.Equal(t, "http://x", preference.Resolve("http://x", brokenStore{}, fallback, logger))
	})

	t.Run("NilStore", func(t *testing.T) {
		assert.Equal(t, fallback, preference.Resolve("  ", nil, fallback, logger))
	})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	store, err := preference.NewFileStore(preference.Config{File: path})
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	base, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, base)

	require.NoError(t, store.Save("http://localhost:3001"))
	_, err = os.Stat(path)
	require.NoError(t, err)

	base, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001", base)
}
