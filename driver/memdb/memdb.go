/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memdb

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suparena/rethinkstore/driver"
)

// DB is an in-memory implementation of driver.Database for tests and
// local development. Tables are created on first use; documents keyed by
// their "id" field are kept in insertion order.
type DB struct {
	mu     sync.RWMutex
	tables map[string]*memTable

	runErr        error
	writeErr      error
	cursorFailAt  int
	cursorFailErr error
}

type memTable struct {
	docs  map[string]driver.Document
	order []string
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{tables: make(map[string]*memTable)}
}

// WithRunError makes every subsequent Run fail with err.
func (d *DB) WithRunError(err error) *DB {
	d.runErr = err
	return d
}

// WithWriteError makes every subsequent RunWrite fail with err.
func (d *DB) WithWriteError(err error) *DB {
	d.writeErr = err
	return d
}

// WithCursorFailure makes streamed cursors fail with err after yielding
// n documents.
func (d *DB) WithCursorFailure(n int, err error) *DB {
	d.cursorFailAt = n
	d.cursorFailErr = err
	return d
}

// Seed inserts documents directly, bypassing the mutation path. Documents
// without an "id" get a generated one. Intended for test setup.
func (d *DB) Seed(table string, docs ...driver.Document) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.ensureTable(table)
	for _, doc := range docs {
		copied := copyDoc(doc)
		id, _ := copied["id"].(string)
		if id == "" {
			id = uuid.NewString()
			copied["id"] = id
		}
		if _, exists := t.docs[id]; !exists {
			t.order = append(t.order, id)
		}
		t.docs[id] = copied
	}
}

// Len reports the number of documents in a table.
func (d *DB) Len(table string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.tables[table]
	if !ok {
		return 0
	}
	return len(t.docs)
}

func (d *DB) ensureTable(name string) *memTable {
	t, ok := d.tables[name]
	if !ok {
		t = &memTable{docs: make(map[string]driver.Document)}
		d.tables[name] = t
	}
	return t
}

// Table returns a handle on the named table, creating it lazily.
func (d *DB) Table(name string) driver.Table {
	return table{selection: selection{db: d, table: name}, name: name}
}

// Close is a no-op; the in-memory database holds no external resources.
func (d *DB) Close() error {
	return nil
}

// stage is one step of a read pipeline, applied in invocation order.
type stage func(docs []driver.Document) []driver.Document

type selection struct {
	db     *DB
	table  string
	point  bool
	id     string
	stages []stage
	sorted bool
}

func (s selection) with(st stage) selection {
	stages := make([]stage, len(s.stages), len(s.stages)+1)
	copy(stages, s.stages)
	s.stages = append(stages, st)
	return s
}

func (s selection) OrderBy(field string, descending bool) driver.Selection {
	s = s.with(func(docs []driver.Document) []driver.Document {
		sorted := make([]driver.Document, len(docs))
		copy(sorted, docs)
		sort.SliceStable(sorted, func(i, j int) bool {
			cmp := compareValues(sorted[i][field], sorted[j][field])
			if descending {
				return cmp > 0
			}
			return cmp < 0
		})
		return sorted
	})
	s.sorted = true
	return s
}

func (s selection) Limit(n int64) driver.Selection {
	return s.with(func(docs []driver.Document) []driver.Document {
		if int64(len(docs)) > n {
			return docs[:n]
		}
		return docs
	})
}

func (s selection) Skip(n int64) driver.Selection {
	return s.with(func(docs []driver.Document) []driver.Document {
		if int64(len(docs)) <= n {
			return nil
		}
		return docs[n:]
	})
}

func (s selection) Pluck(fields ...string) driver.Selection {
	return s.with(func(docs []driver.Document) []driver.Document {
		plucked := make([]driver.Document, len(docs))
		for i, doc := range docs {
			p := make(driver.Document, len(fields))
			for _, f := range fields {
				if v, ok := doc[f]; ok {
					p[f] = v
				}
			}
			plucked[i] = p
		}
		return plucked
	})
}

// eval materializes the selection under the database lock, returning
// document copies.
func (s selection) eval() []driver.Document {
	t, ok := s.db.tables[s.table]
	if !ok {
		return nil
	}

	var docs []driver.Document
	if s.point {
		if doc, ok := t.docs[s.id]; ok {
			docs = []driver.Document{copyDoc(doc)}
		}
	} else {
		docs = make([]driver.Document, 0, len(t.order))
		for _, id := range t.order {
			docs = append(docs, copyDoc(t.docs[id]))
		}
	}

	for _, st := range s.stages {
		docs = st(docs)
	}
	return docs
}

func (s selection) Run(ctx context.Context) (*driver.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.db.runErr != nil {
		return nil, s.db.runErr
	}

	s.db.mu.RLock()
	docs := s.eval()
	s.db.mu.RUnlock()

	if s.point {
		if len(docs) == 0 {
			return &driver.Response{Kind: driver.Nothing}, nil
		}
		return &driver.Response{Kind: driver.Single, Doc: docs[0]}, nil
	}

	// A sorted selection is materialized into an array, matching the
	// non-indexed orderBy behavior of the real backend.
	if s.sorted {
		return &driver.Response{Kind: driver.List, Docs: docs}, nil
	}

	return &driver.Response{
		Kind: driver.Stream,
		Cursor: &sliceCursor{
			docs:   docs,
			failAt: s.db.cursorFailAt,
			fail:   s.db.cursorFailErr,
		},
	}, nil
}

func (s selection) Update(doc driver.Document) driver.Mutation {
	return mutation{sel: s, update: doc}
}

func (s selection) Delete(opts driver.DeleteOpts) driver.Mutation {
	return mutation{sel: s, delete: true, returnChanges: opts.ReturnChanges}
}

type table struct {
	selection
	name string
}

func (t table) Name() string {
	return t.name
}

func (t table) Get(id string) driver.Selection {
	return selection{db: t.db, table: t.name, point: true, id: id}
}

func (t table) Filter(predicate driver.Document) driver.Selection {
	if len(predicate) == 0 {
		return t.selection
	}
	return t.selection.with(func(docs []driver.Document) []driver.Document {
		var matched []driver.Document
		for _, doc := range docs {
			if matches(doc, predicate) {
				matched = append(matched, doc)
			}
		}
		return matched
	})
}

func (t table) Insert(doc driver.Document) driver.Mutation {
	return mutation{sel: t.selection, insert: copyDoc(doc)}
}

type mutation struct {
	sel           selection
	insert        driver.Document
	update        driver.Document
	delete        bool
	returnChanges bool
}

func (m mutation) RunWrite(ctx context.Context) (*driver.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.sel.db.writeErr != nil {
		return nil, m.sel.db.writeErr
	}

	db := m.sel.db
	db.mu.Lock()
	defer db.mu.Unlock()
	t := db.ensureTable(m.sel.table)

	switch {
	case m.insert != nil:
		return insertDoc(t, m.insert)
	case m.update != nil:
		return updateDocs(t, m.sel, m.update)
	case m.delete:
		return deleteDocs(t, m.sel, m.returnChanges)
	}
	return nil, fmt.Errorf("memdb: empty mutation")
}

func insertDoc(t *memTable, doc driver.Document) (*driver.WriteResult, error) {
	res := &driver.WriteResult{}
	id, _ := doc["id"].(string)
	if id == "" {
		id = uuid.NewString()
		doc["id"] = id
		res.GeneratedKeys = []string{id}
	}
	if _, exists := t.docs[id]; exists {
		return nil, fmt.Errorf("memdb: duplicate primary key %q", id)
	}
	t.docs[id] = doc
	t.order = append(t.order, id)
	res.Inserted = 1
	return res, nil
}

func updateDocs(t *memTable, sel selection, update driver.Document) (*driver.WriteResult, error) {
	res := &driver.WriteResult{}
	for _, matched := range sel.eval() {
		id, _ := matched["id"].(string)
		stored, ok := t.docs[id]
		if !ok {
			continue
		}
		changed := false
		for k, v := range update {
			if !reflect.DeepEqual(stored[k], v) {
				stored[k] = v
				changed = true
			}
		}
		if changed {
			res.Replaced++
		} else {
			res.Unchanged++
		}
	}
	return res, nil
}

func deleteDocs(t *memTable, sel selection, returnChanges bool) (*driver.WriteResult, error) {
	res := &driver.WriteResult{}
	for _, matched := range sel.eval() {
		id, _ := matched["id"].(string)
		stored, ok := t.docs[id]
		if !ok {
			continue
		}
		delete(t.docs, id)
		for i, oid := range t.order {
			if oid == id {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
		res.Deleted++
		if returnChanges {
			res.Changes = append(res.Changes, driver.Change{OldVal: stored})
		}
	}
	return res, nil
}

// sliceCursor streams a materialized document slice, optionally failing
// partway through for drain-error tests.
type sliceCursor struct {
	docs   []driver.Document
	pos    int
	failAt int
	fail   error
	err    error
	closed bool
}

func (c *sliceCursor) Next(dst *driver.Document) bool {
	if c.closed || c.err != nil {
		return false
	}
	if c.fail != nil && c.pos >= c.failAt {
		c.err = c.fail
		return false
	}
	if c.pos >= len(c.docs) {
		return false
	}
	*dst = c.docs[c.pos]
	c.pos++
	return true
}

func (c *sliceCursor) Err() error {
	return c.err
}

func (c *sliceCursor) Close() error {
	c.closed = true
	return nil
}

func copyDoc(doc driver.Document) driver.Document {
	copied := make(driver.Document, len(doc))
	for k, v := range doc {
		copied[k] = v
	}
	return copied
}

func matches(doc, predicate driver.Document) bool {
	for k, want := range predicate {
		got, ok := doc[k]
		if !ok || !equalValues(got, want) {
			return false
		}
	}
	return true
}

func equalValues(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

// compareValues orders mixed document values: nil first, then numbers,
// strings, bools and timestamps by their natural order.
func compareValues(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}

	as := fmt.Sprint(a)
	bs := fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return float64(n), true
	default:
		return 0, false
	}
}
