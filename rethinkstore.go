/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethinkstore

import (
	"fmt"
	"io"
	"sync"

	"github.com/suparena/rethinkstore/errors"
)

// Storage is a higher-level interface that manages a collection of
// EntityStore instances. Its methods are not generic; they use the empty
// interface (any) so stores for different entity types can live side by
// side. The caller type-asserts retrieved values to the appropriate
// EntityStore type, or uses the typed helpers in this package.
type Storage interface {
	// RegisterStore registers an EntityStore under a given key
	// (for example, "widget" or "items/widget").
	RegisterStore(key string, store any) error
	// GetStore retrieves the registered EntityStore for a given key.
	GetStore(key string) (any, error)
	// Close releases every registered store that holds a connection.
	Close() error
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]any),
	}
}

// RegisterStore stores the provided EntityStore under the given key.
func (sm *storageManager) RegisterStore(key string, store any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("store with key %q: %w", key, errors.ErrAlreadyRegistered)
	}
	sm.stores[key] = store
	return nil
}

// GetStore retrieves the EntityStore associated with the given key.
func (sm *storageManager) GetStore(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	store, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("store with key %q not found", key)
	}
	return store, nil
}

// Close closes every registered store that exposes a Close method.
// The first failure is returned after all stores have been visited.
func (sm *storageManager) Close() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	var firstErr error
	for key, store := range sm.stores {
		closer, ok := store.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing store %q: %w", key, err)
		}
	}
	return firstErr
}
