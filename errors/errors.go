/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrStore is the root of every failure reported by the underlying driver
	ErrStore = errors.New("store error")

	// ErrNoModel is returned when no entity model is registered for a type
	ErrNoModel = errors.New("no entity model registered for type")

	// ErrAlreadyRegistered is returned when registering a duplicate model or store key
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrInvalidQuery is returned when a query map fails construction-time validation
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNotConnected is returned when an operation is attempted without a live connection
	ErrNotConnected = errors.New("not connected")
)

// StoreError wraps any failure reported by the underlying database driver.
// It carries the store name and the operation that failed so the
// diagnostics sink can tag the event before the error reaches the caller.
type StoreError struct {
	Store string
	Op    string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Store, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// QueryError represents a query that failed construction-time validation.
type QueryError struct {
	Key     string
	Message string
}

func (e *QueryError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid query modifier %q: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("invalid query: %s", e.Message)
}

func (e *QueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// ModelError represents a missing or malformed entity model registration.
type ModelError struct {
	Type    string
	Message string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("entity model for %s: %s", e.Type, e.Message)
}

func (e *ModelError) Is(target error) bool {
	return target == ErrNoModel
}

// Helper functions for creating errors

// NewStoreError wraps a driver failure with the store name and operation.
func NewStoreError(store, op string, err error) error {
	return &StoreError{Store: store, Op: op, Err: err}
}

// NewQueryError creates a new QueryError for the given modifier key.
func NewQueryError(key, message string) error {
	return &QueryError{Key: key, Message: message}
}

// NewModelError creates a new ModelError for the given type name.
func NewModelError(typeName, message string) error {
	return &ModelError{Type: typeName, Message: message}
}

// IsStoreError checks if an error originated from the underlying driver.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

// IsInvalidQuery checks if an error is a query validation error.
func IsInvalidQuery(err error) bool {
	return errors.Is(err, ErrInvalidQuery)
}

// IsNoModel checks if an error indicates a missing model registration.
func IsNoModel(err error) bool {
	return errors.Is(err, ErrNoModel)
}
