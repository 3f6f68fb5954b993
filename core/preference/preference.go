package preference

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const apiBaseKey = "api_base"

// Store persists the API base preference between runs.
type Store interface {
	// Load returns the stored base address, or "" if none is stored.
	Load() (string, error)
	// Save stores the base address.
	Save(base string) error
}

// Resolve picks the API base address: override > stored > fallback.
// A non-empty override is saved to the store. Store failures are logged and
// never prevent resolution.
func Resolve(override string, store Store, fallback string, logger *zap.Logger) string {
	if override = strings.TrimSpace(override); override != "" {
		if store != nil {
			if err := store.Save(override); err != nil {
				logger.Warn("Failed to remember API base", zap.Error(err))
			}
		}
		return trimBase(override)
	}

	if store != nil {
		stored, err := store.Load()
		if err != nil {
			logger.Warn("Failed to read stored API base", zap.Error(err))
		} else if stored = strings.TrimSpace(stored); stored != "" {
			return trimBase(stored)
		}
	}

	return trimBase(fallback)
}

func trimBase(base string) string {
	return strings.TrimSuffix(base, "/")
}

// DefaultFile returns the default preference file path.
func DefaultFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "flatacuties", "preferences.yaml"), nil
}

// FileStore keeps the preference in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for cfg, falling back to DefaultFile.
func NewFileStore(cfg Config) (*FileStore, error) {
	path := cfg.File
	if path == "" {
		p, err := DefaultFile()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored base address. A missing file is not an error.
func (s *FileStore) Load() (string, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read preferences %s: %w", s.path, err)
	}
	return v.GetString(apiBaseKey), nil
}

// Save writes the base address, creating the parent directory if needed.
func (s *FileStore) Save(base string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preference dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set(apiBaseKey, base)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.Mutex
	base string
}

// Load returns the stored base.
func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.base, nil
}

// Save stores base.
func (m *MemoryStore) Save(base string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.base = base
	return nil
}
