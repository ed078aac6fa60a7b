/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"strings"

	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/errors"
)

// ModifierSuffix marks a query-map key as a reserved modifier rather
// than a data filter, e.g. "sort$" or "limit$".
const ModifierSuffix = "$"

// Reserved modifier keys recognized by ParseQueryMap.
const (
	KeyNative = "native$"
	KeySort   = "sort$"
	KeyLimit  = "limit$"
	KeySkip   = "skip$"
	KeyFields = "fields$"
	KeyAll    = "all$"
	KeyLoad   = "load$"
)

// SortKey names the single field a query is ordered by.
// Only single-key sort is supported.
type SortKey struct {
	Field      string
	Descending bool
}

// Query is the store-agnostic description of a read or delete.
// The zero value selects every record with no ordering, paging or
// projection applied.
type Query struct {
	// Filter holds field-equality predicates. Modifier keys can never
	// appear here; construction strips them.
	Filter map[string]interface{}

	// Sort orders the result by a single field before Limit and Skip
	// are applied. Nil means no ordering.
	Sort *SortKey

	// Limit caps the result count. Nil means unbounded.
	Limit *int64

	// Skip offsets into the (sorted) result. Nil means no offset.
	Skip *int64

	// Fields projects the result down to the named fields. Projection
	// is applied after sorting so sort keys need not be projected.
	Fields []string

	// Native, when set, is executed as-is: structured filtering and
	// every modifier above are skipped. The caller assumes full
	// responsibility for the selection's correctness.
	Native driver.Selection

	// All, on remove, deletes every record in the table instead of
	// the filtered matches.
	All bool

	// Load, on remove, gates whether the removed records are returned.
	// Nil means true.
	Load *bool
}

// WantLoad reports whether removed records should be returned.
func (q *Query) WantLoad() bool {
	return q == nil || q.Load == nil || *q.Load
}

// SanitizeFilter returns a new map containing only the keys of raw that
// are not reserved modifiers. It is pure and idempotent; a nil or empty
// input yields an empty map.
func SanitizeFilter(raw map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if strings.HasSuffix(k, ModifierSuffix) {
			continue
		}
		clean[k] = v
	}
	return clean
}

// ParseQueryMap builds a Query from a legacy-style query map in which
// modifiers ride alongside data filters under reserved "$"-suffixed
// keys. Modifier shapes are validated here, at construction time, so
// execution never sees a malformed query. Unknown "$"-suffixed keys are
// dropped along with the recognized ones.
func ParseQueryMap(raw map[string]interface{}) (*Query, error) {
	q := &Query{Filter: SanitizeFilter(raw)}
	if raw == nil {
		return q, nil
	}

	if v, ok := raw[KeyNative]; ok && v != nil {
		sel, ok := v.(driver.Selection)
		if !ok {
			return nil, errors.NewQueryError(KeyNative, "value must be a driver.Selection")
		}
		q.Native = sel
	}

	if v, ok := raw[KeySort]; ok && v != nil {
		sort, err := parseSort(v)
		if err != nil {
			return nil, err
		}
		q.Sort = sort
	}

	if v, ok := raw[KeyLimit]; ok && v != nil {
		n, err := parseCount(KeyLimit, v)
		if err != nil {
			return nil, err
		}
		q.Limit = &n
	}

	if v, ok := raw[KeySkip]; ok && v != nil {
		n, err := parseCount(KeySkip, v)
		if err != nil {
			return nil, err
		}
		q.Skip = &n
	}

	if v, ok := raw[KeyFields]; ok && v != nil {
		fields, err := parseFields(v)
		if err != nil {
			return nil, err
		}
		q.Fields = fields
	}

	if v, ok := raw[KeyAll]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return nil, errors.NewQueryError(KeyAll, "value must be a bool")
		}
		q.All = b
	}

	if v, ok := raw[KeyLoad]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return nil, errors.NewQueryError(KeyLoad, "value must be a bool")
		}
		q.Load = &b
	}

	return q, nil
}

// parseSort accepts a single-entry map from field name to direction
// indicator; a negative direction means descending. An empty map is a
// no-op (no sort). Multi-key maps are rejected because map iteration
// order would make the chosen key representation-dependent.
func parseSort(v interface{}) (*SortKey, error) {
	dirs, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.NewQueryError(KeySort, "value must be a map of field to direction")
	}
	switch len(dirs) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, errors.NewQueryError(KeySort, "only single-key sort is supported")
	}
	for field, dir := range dirs {
		n, err := toInt64(dir)
		if err != nil {
			return nil, errors.NewQueryError(KeySort, "direction must be numeric")
		}
		return &SortKey{Field: field, Descending: n < 0}, nil
	}
	return nil, nil
}

func parseCount(key string, v interface{}) (int64, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, errors.NewQueryError(key, "value must be numeric")
	}
	if n < 0 {
		return 0, errors.NewQueryError(key, "value must not be negative")
	}
	return n, nil
}

func parseFields(v interface{}) ([]string, error) {
	switch fv := v.(type) {
	case []string:
		return append([]string(nil), fv...), nil
	case []interface{}:
		fields := make([]string, 0, len(fv))
		for _, f := range fv {
			s, ok := f.(string)
			if !ok {
				return nil, errors.NewQueryError(KeyFields, "field names must be strings")
			}
			fields = append(fields, s)
		}
		return fields, nil
	default:
		return nil, errors.NewQueryError(KeyFields, "value must be a list of field names")
	}
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, errors.NewQueryError("", "not a number")
	}
}
