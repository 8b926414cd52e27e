// Package datastore is a small JSON-file key-value store used by the hosts
// for durable state. Values round-trip through encoding/json, so plain
// structs, maps and slices all work. Writes are buffered in memory and
// flushed by a background auto-save loop and on Close.
package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const autoSaveInterval = 10 * time.Second

type DataStore struct {
	mu     sync.RWMutex
	file   string
	data   map[string]json.RawMessage
	dirty  bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// New opens or creates the store backing file and starts the auto-save loop.
func New(filePath string) (*DataStore, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	ds := &DataStore{
		file: filePath,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(filePath)
	switch {
	case os.IsNotExist(err):
		if err := ds.writeFileAtomic([]byte("{}")); err != nil {
			return nil, fmt.Errorf("failed to create empty JSON file: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	default:
		if err := json.Unmarshal(raw, &ds.data); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	ds.cancel = cancel
	ds.wg.Add(1)
	go ds.autoSave(ctx)

	return ds, nil
}

// Set stores value under key, marshaling it immediately.
func (ds *DataStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.closed {
		return fmt.Errorf("datastore is closed")
	}
	ds.data[key] = raw
	ds.dirty = true
	return nil
}

// Get unmarshals the value stored under key into out. It reports whether the
// key existed.
func (ds *DataStore) Get(key string, out any) (bool, error) {
	ds.mu.RLock()
	raw, ok := ds.data[key]
	ds.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal value for %q: %w", key, err)
	}
	return true, nil
}

// Delete removes key from the store.
func (ds *DataStore) Delete(key string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if _, ok := ds.data[key]; ok {
		delete(ds.data, key)
		ds.dirty = true
	}
}

// Keys returns every stored key, in no particular order.
func (ds *DataStore) Keys() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	keys := make([]string, 0, len(ds.data))
	for k := range ds.data {
		keys = append(keys, k)
	}
	return keys
}

// Save flushes the current state to disk immediately.
func (ds *DataStore) Save() error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.saveLocked()
}

// Close stops the auto-save loop and performs a final flush.
func (ds *DataStore) Close() error {
	ds.mu.Lock()
	if ds.closed {
		ds.mu.Unlock()
		return nil
	}
	ds.closed = true
	ds.mu.Unlock()

	ds.cancel()
	ds.wg.Wait()

	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.saveLocked()
}

func (ds *DataStore) autoSave(ctx context.Context) {
	defer ds.wg.Done()
	ticker := time.NewTicker(autoSaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ds.mu.Lock()
			if ds.dirty {
				// Best effort; the final flush in Close reports errors.
				_ = ds.saveLocked()
			}
			ds.mu.Unlock()
		}
	}
}

func (ds *DataStore) saveLocked() error {
	raw, err := json.MarshalIndent(ds.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal datastore: %w", err)
	}
	if err := ds.writeFileAtomic(raw); err != nil {
		return err
	}
	ds.dirty = false
	return nil
}

func (ds *DataStore) writeFileAtomic(raw []byte) error {
	tmp := ds.file + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, ds.file); err != nil {
		return fmt.Errorf("failed to replace %s: %w", ds.file, err)
	}
	return nil
}
