/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethink

import (
	"fmt"

	"github.com/suparena/rethinkstore/driver"
)

// collect normalizes a tagged driver response into an ordered entity
// slice, applying the same decode step to every raw record. Streams are
// fully drained; a mid-drain failure discards whatever was buffered and
// returns the error alone.
func (s *Store[T]) collect(resp *driver.Response) ([]T, error) {
	switch resp.Kind {
	case driver.Nothing:
		return []T{}, nil

	case driver.Single:
		entity, err := s.decode(resp.Doc)
		if err != nil {
			return nil, err
		}
		return []T{entity}, nil

	case driver.List:
		entities := make([]T, 0, len(resp.Docs))
		for _, doc := range resp.Docs {
			entity, err := s.decode(doc)
			if err != nil {
				return nil, err
			}
			entities = append(entities, entity)
		}
		return entities, nil

	case driver.Stream:
		return s.drain(resp.Cursor)

	default:
		return nil, fmt.Errorf("unknown response kind %d", resp.Kind)
	}
}

// drain materializes a cursor into entities. The cursor is always
// closed, and the caller sees either the complete result or the error.
func (s *Store[T]) drain(cur driver.Cursor) ([]T, error) {
	defer cur.Close()

	entities := make([]T, 0)
	var doc driver.Document
	for cur.Next(&doc) {
		entity, err := s.decode(doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
		doc = nil
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return entities, nil
}

// first returns the first entity of a normalized response, or nil when
// the response is empty.
func (s *Store[T]) first(resp *driver.Response) (*T, error) {
	entities, err := s.collect(resp)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, nil
	}
	return &entities[0], nil
}

// fromChanges reconstructs the entities that existed immediately before
// a mutating operation, from the change-list's old_val snapshots.
func (s *Store[T]) fromChanges(changes []driver.Change) ([]T, error) {
	entities := make([]T, 0, len(changes))
	for _, c := range changes {
		if c.OldVal == nil {
			continue
		}
		entity, err := s.decode(c.OldVal)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
