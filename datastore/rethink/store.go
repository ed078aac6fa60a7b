/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethink

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/errors"
	"github.com/suparena/rethinkstore/registry"
	"github.com/suparena/rethinkstore/storagemodels"
)

// DefaultName tags diagnostics events when no store name is configured.
const DefaultName = "rethink-store"

// Option configures a Store.
type Option func(*settings)

type settings struct {
	name   string
	logger zerolog.Logger
}

// WithName sets the store name used to tag logged driver errors.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger sets the diagnostics sink for driver errors.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// Store implements datastore.EntityStore[T] against a RethinkDB-shaped
// driver boundary. It holds the shared database handle and the entity
// model for T; everything else is resolved per call.
type Store[T any] struct {
	db    driver.Database
	model registry.Model
	name  string
	log   zerolog.Logger
}

// New constructs a Store for type T. The entity model for T must be
// registered beforehand.
func New[T any](db driver.Database, opts ...Option) (*Store[T], error) {
	if db == nil {
		return nil, errors.ErrNotConnected
	}
	model, ok := registry.ModelFor[T]()
	if !ok {
		var zero T
		return nil, errors.NewModelError(typeNameOf(zero), "not registered")
	}

	s := settings{
		name:   DefaultName,
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Store[T]{db: db, model: model, name: s.name, log: s.logger}, nil
}

// table resolves the physical table fresh on every operation; the
// reference is never cached here.
func (s *Store[T]) table() driver.Table {
	return s.db.Table(s.model.TableName())
}

// fail logs a driver error once, tagged with the store name, and wraps
// it for the caller.
func (s *Store[T]) fail(op string, err error) error {
	s.log.Error().
		Str("store", s.name).
		Str("table", s.model.TableName()).
		Str("op", op).
		Err(err).
		Msg("store operation failed")
	return errors.NewStoreError(s.name, op, err)
}

// Save inserts the entity when it carries no identifier and updates the
// identified record otherwise. The returned entity is a new value; on
// insert it carries the first generated identifier. The input is never
// mutated.
func (s *Store[T]) Save(ctx context.Context, entity T) (T, error) {
	var zero T

	doc, err := s.writePayload(entity)
	if err != nil {
		return zero, s.fail("save", err)
	}

	table := s.table()
	idField := s.model.ID()

	if id, ok := identifier(doc, idField); ok {
		if _, err := table.Get(id).Update(doc).RunWrite(ctx); err != nil {
			return zero, s.fail("save", err)
		}
		return entity, nil
	}

	wr, err := table.Insert(doc).RunWrite(ctx)
	if err != nil {
		return zero, s.fail("save", err)
	}
	if len(wr.GeneratedKeys) > 0 {
		doc[idField] = wr.GeneratedKeys[0]
	}

	saved, err := s.decode(doc)
	if err != nil {
		return zero, s.fail("save", err)
	}
	return saved, nil
}

// Load returns the first entity matching q, or nil with a nil error when
// nothing matches. A filter carrying the identifier field resolves as a
// direct point lookup; anything else is a filtered scan limited to one
// result.
func (s *Store[T]) Load(ctx context.Context, q *storagemodels.Query) (*T, error) {
	if q == nil {
		q = &storagemodels.Query{}
	}
	table := s.table()

	var sel driver.Selection
	switch {
	case q.Native != nil:
		sel = q.Native
	default:
		if id, ok := identifier(q.Filter, s.model.ID()); ok {
			sel = table.Get(id)
		} else {
			sel = compileQuery(table.Filter(q.Filter), q).Limit(1)
		}
	}

	resp, err := sel.Run(ctx)
	if err != nil {
		return nil, s.fail("load", err)
	}
	entity, err := s.first(resp)
	if err != nil {
		return nil, s.fail("load", err)
	}
	return entity, nil
}

// List returns every entity matching q. The underlying cursor is fully
// drained before the result is returned; a mid-drain failure discards
// the partial buffer and surfaces the error once.
func (s *Store[T]) List(ctx context.Context, q *storagemodels.Query) ([]T, error) {
	if q == nil {
		q = &storagemodels.Query{}
	}

	sel := compileQuery(s.table().Filter(q.Filter), q)
	resp, err := sel.Run(ctx)
	if err != nil {
		return nil, s.fail("list", err)
	}
	entities, err := s.collect(resp)
	if err != nil {
		return nil, s.fail("list", err)
	}
	return entities, nil
}

// Remove deletes the records matching q — every record in the table when
// q.All is set. Change tracking is always requested so the removed
// records can be reconstructed; whether they are returned is gated by
// q.Load (default true).
func (s *Store[T]) Remove(ctx context.Context, q *storagemodels.Query) ([]T, error) {
	if q == nil {
		q = &storagemodels.Query{}
	}
	table := s.table()
	opts := driver.DeleteOpts{ReturnChanges: true}

	var mut driver.Mutation
	if q.All {
		mut = table.Delete(opts)
	} else {
		mut = table.Filter(q.Filter).Delete(opts)
	}

	wr, err := mut.RunWrite(ctx)
	if err != nil {
		return nil, s.fail("remove", err)
	}
	if !q.WantLoad() {
		return []T{}, nil
	}

	removed, err := s.fromChanges(wr.Changes)
	if err != nil {
		return nil, s.fail("remove", err)
	}
	return removed, nil
}

// Native exposes the raw database handle and the resolved table. No
// translation is applied; callers assume full responsibility for
// request correctness.
func (s *Store[T]) Native() (driver.Database, driver.Table) {
	return s.db, s.table()
}

// Close releases the shared connection; a no-op success when none was
// established.
func (s *Store[T]) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return s.fail("close", err)
	}
	return nil
}

// identifier extracts a non-empty string identifier from a document or
// filter map.
func identifier(doc map[string]interface{}, field string) (string, bool) {
	if doc == nil {
		return "", false
	}
	id, ok := doc[field].(string)
	return id, ok && id != ""
}
