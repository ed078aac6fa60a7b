/*
Package driver defines the boundary between the store's query engine and a
concrete database backend.

The boundary is deliberately narrow: a Database hands out Tables, a Table is
a Selection over all of its records, and Selections compose ordering, limit,
skip and field projection before a single Run. Writes go through Mutation
and report a WriteResult with optional before/after Changes.

Read results come back as a tagged Response — Nothing, Single, List or
Stream — so callers dispatch on an explicit tag rather than probing the
payload for methods.

Implementations:
  - rethinkdb: the real backend over gopkg.in/rethinkdb/rethinkdb-go.v6
  - memdb: an in-memory backend for tests and local development
*/
package driver
