/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the EntityStore
// interface for testing code that depends on rethinkstore.
package mock

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/storagemodels"
)

// EntityStore is a mock implementation of datastore.EntityStore[T].
// Identifier-based operations work out of the box through the ID
// accessor functions; filter-based behavior is overridable per test via
// the With* hooks.
type EntityStore[T any] struct {
	mu    sync.RWMutex
	data  map[string]T
	order []string

	idFunc    func(T) string
	setIDFunc func(T, string) T

	loadFunc   func(ctx context.Context, q *storagemodels.Query) (*T, error)
	listFunc   func(ctx context.Context, q *storagemodels.Query) ([]T, error)
	removeFunc func(ctx context.Context, q *storagemodels.Query) ([]T, error)

	saveError error
	closed    bool
}

// New creates a mock EntityStore. idFunc extracts the identifier from an
// entity; setIDFunc returns a copy with the identifier set.
func New[T any](idFunc func(T) string, setIDFunc func(T, string) T) *EntityStore[T] {
	return &EntityStore[T]{
		data:      make(map[string]T),
		idFunc:    idFunc,
		setIDFunc: setIDFunc,
	}
}

// WithLoadFunc sets a custom load function for testing.
func (m *EntityStore[T]) WithLoadFunc(f func(ctx context.Context, q *storagemodels.Query) (*T, error)) *EntityStore[T] {
	m.loadFunc = f
	return m
}

// WithListFunc sets a custom list function for testing.
func (m *EntityStore[T]) WithListFunc(f func(ctx context.Context, q *storagemodels.Query) ([]T, error)) *EntityStore[T] {
	m.listFunc = f
	return m
}

// WithRemoveFunc sets a custom remove function for testing.
func (m *EntityStore[T]) WithRemoveFunc(f func(ctx context.Context, q *storagemodels.Query) ([]T, error)) *EntityStore[T] {
	m.removeFunc = f
	return m
}

// WithSaveError makes Save operations return an error.
func (m *EntityStore[T]) WithSaveError(err error) *EntityStore[T] {
	m.saveError = err
	return m
}

// Seed stores entities directly, bypassing Save.
func (m *EntityStore[T]) Seed(entities ...T) *EntityStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entities {
		m.put(e)
	}
	return m
}

// Len reports the number of stored entities.
func (m *EntityStore[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Closed reports whether Close has been called.
func (m *EntityStore[T]) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

func (m *EntityStore[T]) put(entity T) T {
	id := m.idFunc(entity)
	if id == "" {
		id = uuid.NewString()
		entity = m.setIDFunc(entity, id)
	}
	if _, exists := m.data[id]; !exists {
		m.order = append(m.order, id)
	}
	m.data[id] = entity
	return entity
}

// Save stores the entity, assigning a generated identifier when it has
// none, and returns the stored copy.
func (m *EntityStore[T]) Save(ctx context.Context, entity T) (T, error) {
	if m.saveError != nil {
		var zero T
		return zero, m.saveError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put(entity), nil
}

// Load returns the entity whose identifier appears in the query filter,
// or delegates to the configured load hook.
func (m *EntityStore[T]) Load(ctx context.Context, q *storagemodels.Query) (*T, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, q)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if q != nil && q.Filter != nil {
		if id, ok := q.Filter["id"].(string); ok {
			if entity, exists := m.data[id]; exists {
				return &entity, nil
			}
		}
	}
	return nil, nil
}

// List returns every stored entity in insertion order, or delegates to
// the configured list hook.
func (m *EntityStore[T]) List(ctx context.Context, q *storagemodels.Query) ([]T, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, q)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entities := make([]T, 0, len(m.order))
	for _, id := range m.order {
		entities = append(entities, m.data[id])
	}
	return entities, nil
}

// Remove clears the store when q.All is set, or delegates to the
// configured remove hook. The removed entities are returned unless
// q.Load is false.
func (m *EntityStore[T]) Remove(ctx context.Context, q *storagemodels.Query) ([]T, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []T
	if q != nil && q.All {
		for _, id := range m.order {
			removed = append(removed, m.data[id])
		}
		m.data = make(map[string]T)
		m.order = nil
	}
	if q != nil && !q.WantLoad() {
		return []T{}, nil
	}
	return removed, nil
}

// Native returns nil handles; the mock has no driver.
func (m *EntityStore[T]) Native() (driver.Database, driver.Table) {
	return nil, nil
}

// Close marks the store closed.
func (m *EntityStore[T]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
