/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/storagemodels"
)

// EntityStore is the store-agnostic persistence contract for entities of
// type T. Implementations translate the query model into native database
// operations; callers never see the underlying driver except through the
// Native escape hatch.
type EntityStore[T any] interface {
	// Save inserts the entity when it carries no identifier, otherwise
	// updates the record with that identifier. It returns a new entity
	// value; on insert the returned copy carries the generated
	// identifier. The caller's instance is never mutated.
	Save(ctx context.Context, entity T) (T, error)

	// Load returns the first entity matching the query, or nil (with a
	// nil error) when nothing matches. A query whose filter carries the
	// identifier field resolves as a direct point lookup.
	Load(ctx context.Context, q *storagemodels.Query) (*T, error)

	// List returns every entity matching the query, fully drained and
	// in query order. A mid-drain failure discards the partial result.
	List(ctx context.Context, q *storagemodels.Query) ([]T, error)

	// Remove deletes the matching records — every record when q.All is
	// set. The removed records are reconstructed and returned unless
	// q.Load is false, in which case the result is always empty.
	Remove(ctx context.Context, q *storagemodels.Query) ([]T, error)

	// Native exposes the raw database handle and resolved table for
	// requests this layer cannot express. Callers assume full
	// responsibility for correctness.
	Native() (driver.Database, driver.Table)

	// Close releases the shared connection; a no-op success when none
	// was established.
	Close() error
}
