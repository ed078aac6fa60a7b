/*
Package rethink implements the EntityStore contract against RethinkDB.

It is the translation core: a typed Query (filters plus sort, limit,
skip, projection and native-passthrough options) is compiled into a
driver selection, executed against the single shared connection, and the
tagged response is normalized back into entities through one uniform
decode step.

Usage:

	registry.RegisterModel[Widget](registry.Model{Base: "items", Name: "widget"})

	db, _ := rethinkdb.Connect(rethinkdb.Options{Database: "app"})
	store, _ := rethink.New[Widget](db, rethink.WithName("widget-store"))

	saved, err := store.Save(ctx, Widget{Status: "active"})

Every driver failure is logged once through the configured zerolog sink,
tagged with the store name, and surfaced as an errors.StoreError. Load
reports "no match" as a nil entity with a nil error, never as an error.

Concurrency: the store holds no cross-call state beyond the shared
database handle; operations may be issued concurrently without external
synchronization. Cancellation rides on the context passed to each call.
Save and Remove are not idempotent and are not safe to retry blindly.
*/
package rethink
