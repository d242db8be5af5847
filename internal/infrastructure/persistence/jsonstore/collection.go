// Package jsonstore provides a mutex-guarded JSON file collection used by
// the file-backed repositories.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection persists a slice of records as a pretty-printed JSON array in
// a single file. Every read-modify-write cycle runs under the collection
// mutex, so concurrent mutations cannot interleave and drop writes.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection creates a collection backed by <dataDir>/<name>.json. The
// file is created lazily on first write.
func NewCollection[T any](dataDir, name string) (*Collection[T], error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Collection[T]{path: filepath.Join(dataDir, name+".json")}, nil
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string { return c.path }

// ReadAll loads every record. A missing file yields an empty slice, not an
// error, so a fresh deployment starts clean.
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked()
}

// WriteAll replaces the entire collection.
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(records)
}

// Mutate runs fn against the current records under the collection lock and
// persists whatever fn returns. If fn errors, nothing is written.
func (c *Collection[T]) Mutate(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.writeLocked(updated)
}

func (c *Collection[T]) readLocked() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.path, err)
	}
	return records, nil
}

func (c *Collection[T]) writeLocked(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return nil
}
