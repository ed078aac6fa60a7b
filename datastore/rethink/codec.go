/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethink

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/suparena/rethinkstore/driver"
)

// decode reconstructs an entity from a raw document. Field names follow
// the entity's json tags, matching how the driver serializes records.
func (s *Store[T]) decode(doc driver.Document) (T, error) {
	var entity T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     &entity,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return entity, err
	}
	if err := dec.Decode(doc); err != nil {
		return entity, fmt.Errorf("decode %s: %w", s.model.Name, err)
	}
	return entity, nil
}

// writePayload extracts the serializable document for a write, stripping
// the model's internal bookkeeping fields and an empty identifier (so
// inserts let the database generate one).
func (s *Store[T]) writePayload(entity T) (driver.Document, error) {
	doc := driver.Document{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(entity); err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.model.Name, err)
	}

	for _, field := range s.model.Internal {
		delete(doc, field)
	}

	idField := s.model.ID()
	if id, ok := doc[idField]; ok {
		if sid, isStr := id.(string); !isStr || sid == "" {
			delete(doc, idField)
		}
	}
	return doc, nil
}

func typeNameOf(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
