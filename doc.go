/*
Package rethinkstore translates a store-agnostic entity query model into
native RethinkDB operations, so application code can express persistence
intent — save, load, list, remove — without depending on the driver API.

The library is organized bottom-up:
  - storagemodels: the typed Query (filters plus sort/limit/skip/
    projection/native-passthrough options) and the reserved-key sanitizer
  - driver: the backend boundary with tagged responses and change-lists
    (rethinkdb for the real backend, memdb for tests)
  - registry: entity models — canonical names, identifier fields, and
    the table-name derivation
  - datastore/rethink: the query compiler, result normalizer and CRUD
    core
  - root package: thread-safe management of store collections

Basic Usage:

	// Register the entity model once
	registry.RegisterModel[Widget](registry.Model{
	    Base: "items",
	    Name: "widget",
	})

	// Connect and build a typed store
	db, _ := rethinkdb.Connect(rethinkdb.Options{Database: "app"})
	widgets, _ := rethink.New[Widget](db)

	// Save assigns the generated identifier onto the returned copy
	saved, err := widgets.Save(ctx, Widget{Status: "active"})

	// Query with typed modifiers
	limit := int64(2)
	recent, err := widgets.List(ctx, &storagemodels.Query{
	    Filter: map[string]interface{}{"status": "active"},
	    Sort:   &storagemodels.SortKey{Field: "createdAt", Descending: true},
	    Limit:  &limit,
	})

For more information, see the documentation at
https://github.com/suparena/rethinkstore
*/
package rethinkstore
