/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"errors"
	"testing"

	rserrors "github.com/suparena/rethinkstore/errors"
)

type widget struct {
	ID string `json:"id"`
}

type orphan struct {
	ID string `json:"id"`
}

func TestTableName(t *testing.T) {
	tests := []struct {
		name     string
		model    Model
		expected string
	}{
		{
			name:     "with base",
			model:    Model{Base: "items", Name: "widget"},
			expected: "items_widget",
		},
		{
			name:     "without base",
			model:    Model{Name: "widget"},
			expected: "widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.TableName(); got != tt.expected {
				t.Errorf("TableName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIDFieldDefault(t *testing.T) {
	m := Model{Name: "widget"}
	if got := m.ID(); got != DefaultIDField {
		t.Errorf("ID() = %q, want %q", got, DefaultIDField)
	}

	m.IDField = "widgetId"
	if got := m.ID(); got != "widgetId" {
		t.Errorf("ID() = %q, want %q", got, "widgetId")
	}
}

func TestRegisterModel(t *testing.T) {
	if err := RegisterModel[widget](Model{Base: "items", Name: "widget"}); err != nil {
		t.Fatalf("RegisterModel failed: %v", err)
	}

	m, ok := ModelFor[widget]()
	if !ok {
		t.Fatal("ModelFor should find the registered model")
	}
	if m.TableName() != "items_widget" {
		t.Errorf("TableName() = %q, want items_widget", m.TableName())
	}

	// Duplicate registration is rejected.
	err := RegisterModel[widget](Model{Name: "widget"})
	if !errors.Is(err, rserrors.ErrAlreadyRegistered) {
		t.Errorf("Expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterModelRequiresName(t *testing.T) {
	err := RegisterModel[orphan](Model{Base: "items"})
	if !rserrors.IsNoModel(err) {
		t.Errorf("Expected a model error, got %v", err)
	}
}

func TestModelForUnregistered(t *testing.T) {
	if _, ok := ModelFor[orphan](); ok {
		t.Error("ModelFor should not find an unregistered type")
	}
}
