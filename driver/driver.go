/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package driver

import "context"

// Document is the raw record shape exchanged with the database.
type Document = map[string]interface{}

// ResponseKind tags the shape of a read response. The result normalizer
// dispatches on this tag instead of probing the payload.
type ResponseKind uint8

const (
	// Nothing means the read matched no record (point lookup miss).
	Nothing ResponseKind = iota
	// Single means the read resolved to exactly one document.
	Single
	// List means the read materialized into an in-memory array,
	// e.g. a non-indexed orderBy.
	List
	// Stream means the read produced a cursor that must be drained.
	Stream
)

// Response is the tagged result of a read. Exactly one payload field is
// populated, selected by Kind.
type Response struct {
	Kind   ResponseKind
	Doc    Document
	Docs   []Document
	Cursor Cursor
}

// Cursor is a drainable handle over a multi-record result set.
// Next returns false when the set is exhausted or an error occurred;
// callers must check Err afterwards and always Close.
type Cursor interface {
	Next(dst *Document) bool
	Err() error
	Close() error
}

// Change is a before/after snapshot of a record affected by a write.
type Change struct {
	OldVal Document
	NewVal Document
}

// WriteResult reports the outcome of a mutation.
type WriteResult struct {
	Inserted      int64
	Replaced      int64
	Unchanged     int64
	Deleted       int64
	GeneratedKeys []string
	Changes       []Change
}

// DeleteOpts controls a delete mutation.
type DeleteOpts struct {
	// ReturnChanges requests old_val snapshots of the deleted records.
	ReturnChanges bool
}

// Selection is a composable read over a set of candidate records.
// Builder methods return a new Selection; the receiver is never modified,
// so selections are safe to share and reuse.
type Selection interface {
	OrderBy(field string, descending bool) Selection
	Limit(n int64) Selection
	Skip(n int64) Selection
	Pluck(fields ...string) Selection

	// Update mutates every record in the selection with the given payload.
	Update(doc Document) Mutation
	// Delete removes every record in the selection.
	Delete(opts DeleteOpts) Mutation

	// Run executes the selection against the shared connection.
	Run(ctx context.Context) (*Response, error)
}

// Mutation is a write ready to execute.
type Mutation interface {
	RunWrite(ctx context.Context) (*WriteResult, error)
}

// Table is a named collection of documents. A Table is itself a
// Selection over all of its records.
type Table interface {
	Selection

	Name() string
	// Get selects the single record with the given identifier.
	Get(id string) Selection
	// Filter selects records whose fields equal the predicate's values.
	Filter(predicate Document) Selection
	// Insert adds a new record, generating an identifier when the
	// payload carries none.
	Insert(doc Document) Mutation
}

// Database is the shared connection handle. It is established once and
// reused by every operation; Close releases it.
type Database interface {
	Table(name string) Table
	Close() error
}
