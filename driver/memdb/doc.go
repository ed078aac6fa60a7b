/*
Package memdb provides an in-memory implementation of the driver boundary
for tests and local development.

It mirrors the observable behavior of the real backend closely enough for
the store's tests: point lookups resolve to Single/Nothing, sorted reads
materialize into List responses, unsorted scans stream through a cursor,
inserts generate identifiers for payloads without one, and deletes can
return old_val change snapshots.

Failure injection hooks support error-path tests:

	db := memdb.New().WithCursorFailure(2, io.ErrUnexpectedEOF)
*/
package memdb
