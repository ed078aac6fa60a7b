/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/rethinkstore/errors"
)

// DefaultIDField is the document field holding the entity identifier
// when a model does not name one.
const DefaultIDField = "id"

// Model describes how an entity type maps onto the database: its
// canonical name, its identifier field, and the bookkeeping fields that
// must never reach a write payload.
type Model struct {
	// Base is the optional namespace segment of the canonical name.
	Base string
	// Name is the base name of the canonical name. Required.
	Name string
	// IDField is the document field carrying the identifier.
	// Empty means DefaultIDField.
	IDField string
	// Internal lists fields stripped from every write payload.
	Internal []string
}

// TableName derives the physical table reference from the canonical
// name: "{base}_{name}" when a base is present, else just "{name}".
func (m Model) TableName() string {
	if m.Base != "" {
		return m.Base + "_" + m.Name
	}
	return m.Name
}

// ID returns the identifier field, falling back to DefaultIDField.
func (m Model) ID() string {
	if m.IDField == "" {
		return DefaultIDField
	}
	return m.IDField
}

var (
	modelRegistry = make(map[reflect.Type]Model)
	mu            sync.RWMutex
)

// RegisterModel associates a Go type T with its entity model. Registering
// the same type twice is an error to prevent accidental overrides.
func RegisterModel[T any](m Model) error {
	if m.Name == "" {
		return errors.NewModelError(typeName[T](), "model name must not be empty")
	}

	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	if _, exists := modelRegistry[t]; exists {
		return fmt.Errorf("model for type %s: %w", typeName[T](), errors.ErrAlreadyRegistered)
	}
	modelRegistry[t] = m
	return nil
}

// ModelFor retrieves the model registered for type T, if any.
func ModelFor[T any]() (Model, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	m, ok := modelRegistry[t]
	return m, ok
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
