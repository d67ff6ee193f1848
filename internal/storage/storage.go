package storage

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/falcon/internal/shared"
)

// Persisted keys.
const (
	KeyTasks         = "tasks"
	KeyGoals         = "goals"
	KeyCategories    = "categories"
	KeyThemes        = "themes"
	KeyActiveThemeID = "active-theme-id"
)

// Keys lists every key written by the domain store.
var Keys = []string{KeyTasks, KeyGoals, KeyCategories, KeyThemes, KeyActiveThemeID}

// Backend is a durable key-value medium.
type Backend interface {
	Get(key string) ([]byte, bool, error) // Get returns the raw value and whether it exists
	Put(key string, value []byte) error   // Put overwrites the value stored under key
	Delete(key string) error              // Delete removes key; absent keys are not an error
	Keys() ([]string, error)              // Keys lists stored keys in ascending order
	Close() error
}

// Adapter encodes values onto a [Backend].
type Adapter struct {
	backend Backend
	logger  *log.Logger
}

// NewAdapter creates an [Adapter] over backend. A nil logger defaults to [shared.NewLogger].
func NewAdapter(backend Backend, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Adapter{backend: backend, logger: shared.WithLogger(logger, "component", "storage")}
}

// Backend returns the underlying medium.
func (a *Adapter) Backend() Backend {
	return a.backend
}

// Close releases the backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}

// Load returns the value saved under key, or fallback when nothing usable is stored.
func Load[T any](a *Adapter, key string, fallback T) T {
	raw, ok, err := a.backend.Get(key)
	if err != nil {
		a.logger.Warn("failed to read stored value, using fallback", "key", key, "error", err)
		return fallback
	}
	if !ok || len(raw) == 0 {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		a.logger.Warn("failed to decode stored value, using fallback", "key", key, "error", err)
		return fallback
	}
	return value
}

// Save encodes value and stores it under key, replacing any previous value.
func Save[T any](a *Adapter, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := a.backend.Put(key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Open creates the [Backend] selected by cfg.Storage.Driver.
func Open(cfg *shared.Config) (Backend, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return OpenSQLite(cfg.Database)
	case "file":
		return NewFileBackend(cfg.Storage.Path)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownDriver, cfg.Storage.Driver)
	}
}
