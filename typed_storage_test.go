/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethinkstore

import (
	"context"
	"testing"

	"github.com/suparena/rethinkstore/datastore"
	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/storagemodels"
)

// stubStore is a minimal EntityStore implementation for registry tests.
type stubStore[T any] struct {
	closed bool
}

func (s *stubStore[T]) Save(ctx context.Context, entity T) (T, error) {
	return entity, nil
}

func (s *stubStore[T]) Load(ctx context.Context, q *storagemodels.Query) (*T, error) {
	return nil, nil
}

func (s *stubStore[T]) List(ctx context.Context, q *storagemodels.Query) ([]T, error) {
	return nil, nil
}

func (s *stubStore[T]) Remove(ctx context.Context, q *storagemodels.Query) ([]T, error) {
	return nil, nil
}

func (s *stubStore[T]) Native() (driver.Database, driver.Table) {
	return nil, nil
}

func (s *stubStore[T]) Close() error {
	s.closed = true
	return nil
}

// Test types
type TestUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TestProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestTypedStorage(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		storage := NewTypedStorage[TestUser]()

		// Register store
		userStore := &stubStore[TestUser]{}
		err := storage.Register("users", userStore)
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get store
		retrieved, err := storage.Get("users")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("Retrieved store is nil")
		}

		// List stores
		keys := storage.List()
		if len(keys) != 1 || keys[0] != "users" {
			t.Fatalf("Expected [users], got %v", keys)
		}

		// Remove store
		err = storage.Remove("users")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}
		if _, err := storage.Get("users"); err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		storage := NewTypedStorage[TestUser]()

		if err := storage.Register("users", &stubStore[TestUser]{}); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := storage.Register("users", &stubStore[TestUser]{}); err == nil {
			t.Fatal("Expected duplicate registration error")
		}
	})
}

func TestMultiTypeStorage(t *testing.T) {
	mts := NewMultiTypeStorage()

	if err := RegisterStore[TestUser](mts, "users", &stubStore[TestUser]{}); err != nil {
		t.Fatalf("Failed to register user store: %v", err)
	}
	if err := RegisterStore[TestProduct](mts, "products", &stubStore[TestProduct]{}); err != nil {
		t.Fatalf("Failed to register product store: %v", err)
	}

	// Same key under different types does not collide.
	if err := RegisterStore[TestProduct](mts, "users", &stubStore[TestProduct]{}); err != nil {
		t.Fatalf("Keys should be scoped per type: %v", err)
	}

	userStore, err := GetStore[TestUser](mts, "users")
	if err != nil {
		t.Fatalf("Failed to get user store: %v", err)
	}
	var _ datastore.EntityStore[TestUser] = userStore

	keys := ListStores[TestProduct](mts)
	if len(keys) != 2 {
		t.Fatalf("Expected 2 product store keys, got %v", keys)
	}

	if err := RemoveStore[TestUser](mts, "users"); err != nil {
		t.Fatalf("Failed to remove: %v", err)
	}
	if _, err := GetStore[TestUser](mts, "users"); err == nil {
		t.Fatal("Expected error after removal")
	}
}

func TestStorageManager(t *testing.T) {
	sm := NewStorageManager()

	store := &stubStore[TestUser]{}
	if err := sm.RegisterStore("users", store); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if err := sm.RegisterStore("users", &stubStore[TestUser]{}); err == nil {
		t.Fatal("Expected duplicate registration error")
	}

	got, err := sm.GetStore("users")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if got != store {
		t.Fatal("Retrieved a different store")
	}

	if _, err := sm.GetStore("missing"); err == nil {
		t.Fatal("Expected error for unknown key")
	}

	// Close releases every registered store.
	if err := sm.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !store.closed {
		t.Fatal("Close should reach registered stores")
	}
}
