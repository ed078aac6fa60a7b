/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethinkstore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/rethinkstore/datastore"
	"github.com/suparena/rethinkstore/errors"
)

// TypedStorage provides type-safe store management for a specific entity
// type T.
type TypedStorage[T any] struct {
	mu     sync.RWMutex
	stores map[string]datastore.EntityStore[T]
}

// NewTypedStorage creates a new TypedStorage for type T.
func NewTypedStorage[T any]() *TypedStorage[T] {
	return &TypedStorage[T]{
		stores: make(map[string]datastore.EntityStore[T]),
	}
}

// Register adds a store with the given key.
func (ts *TypedStorage[T]) Register(key string, store datastore.EntityStore[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; exists {
		return fmt.Errorf("store with key %q: %w", key, errors.ErrAlreadyRegistered)
	}

	ts.stores[key] = store
	return nil
}

// Get retrieves a store by key.
func (ts *TypedStorage[T]) Get(key string) (datastore.EntityStore[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	store, exists := ts.stores[key]
	if !exists {
		return nil, fmt.Errorf("store with key %q not found", key)
	}

	return store, nil
}

// Remove deletes a store by key.
func (ts *TypedStorage[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; !exists {
		return fmt.Errorf("store with key %q not found", key)
	}

	delete(ts.stores, key)
	return nil
}

// List returns all registered store keys.
func (ts *TypedStorage[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.stores))
	for k := range ts.stores {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeStorage manages TypedStorage instances for different entity
// types.
type MultiTypeStorage struct {
	mu       sync.RWMutex
	storages map[reflect.Type]interface{}
}

// NewMultiTypeStorage creates a new MultiTypeStorage.
func NewMultiTypeStorage() *MultiTypeStorage {
	return &MultiTypeStorage{
		storages: make(map[reflect.Type]interface{}),
	}
}

// GetTypedStorage returns the TypedStorage for the specified type,
// creating it if necessary.
func GetTypedStorage[T any](mts *MultiTypeStorage) *TypedStorage[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedStorage[T])
	}

	newStorage := NewTypedStorage[T]()
	mts.storages[typ] = newStorage
	return newStorage
}

// RegisterStore is a convenience function to register a store for type T.
func RegisterStore[T any](mts *MultiTypeStorage, key string, store datastore.EntityStore[T]) error {
	storage := GetTypedStorage[T](mts)
	return storage.Register(key, store)
}

// GetStore is a convenience function to get a store for type T.
func GetStore[T any](mts *MultiTypeStorage, key string) (datastore.EntityStore[T], error) {
	storage := GetTypedStorage[T](mts)
	return storage.Get(key)
}

// RemoveStore is a convenience function to remove a store for type T.
func RemoveStore[T any](mts *MultiTypeStorage, key string) error {
	storage := GetTypedStorage[T](mts)
	return storage.Remove(key)
}

// ListStores is a convenience function to list all stores for type T.
func ListStores[T any](mts *MultiTypeStorage) []string {
	storage := GetTypedStorage[T](mts)
	return storage.List()
}
