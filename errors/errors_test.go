/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewStoreError("rethink-store", "list", cause)

	// Test error message
	expected := "rethink-store: list: connection refused"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrStore) {
		t.Error("StoreError should match ErrStore")
	}

	// Test unwrapping to the driver error
	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to the original driver error")
	}

	// Test helper function
	if !IsStoreError(err) {
		t.Error("IsStoreError should return true for StoreError")
	}
}

func TestQueryError(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		message  string
		expected string
	}{
		{
			name:     "with modifier key",
			key:      "sort$",
			message:  "at most one sort key is supported",
			expected: `invalid query modifier "sort$": at most one sort key is supported`,
		},
		{
			name:     "without modifier key",
			key:      "",
			message:  "query must not be nil",
			expected: "invalid query: query must not be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewQueryError(tt.key, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidQuery) {
				t.Error("QueryError should match ErrInvalidQuery")
			}

			if !IsInvalidQuery(err) {
				t.Error("IsInvalidQuery should return true for QueryError")
			}
		})
	}
}

func TestModelError(t *testing.T) {
	err := NewModelError("Widget", "not registered")

	expected := "entity model for Widget: not registered"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNoModel) {
		t.Error("ModelError should match ErrNoModel")
	}

	if !IsNoModel(err) {
		t.Error("IsNoModel should return true for ModelError")
	}
}

func TestWrappedStoreError(t *testing.T) {
	cause := fmt.Errorf("cursor closed")
	err := fmt.Errorf("listing widgets: %w", NewStoreError("rethink-store", "list", cause))

	if !errors.Is(err, ErrStore) {
		t.Error("wrapped StoreError should still match ErrStore")
	}

	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find the StoreError")
	}
	if se.Op != "list" {
		t.Errorf("Expected op %q, got %q", "list", se.Op)
	}
}
