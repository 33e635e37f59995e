// Package storage provides the key-value backends behind persisted notes
// and settings.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"deckgrip/internal/config"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("storage: closed")

// KV is a minimal byte-oriented key-value store
type KV interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open returns the backend selected by cfg
func Open(cfg config.StorageConfig) (KV, error) {
	switch cfg.Driver {
	case config.StorageFile, "":
		return NewFileKV(cfg.Path)
	case config.StorageSQLite:
		return NewSQLiteKV(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// MemoryKV keeps values in memory. Used for tests and --no-persist runs.
type MemoryKV struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryKV creates an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
