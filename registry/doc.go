/*
Package registry manages entity model registration for rethinkstore.

A Model associates a Go type with its canonical name, its identifier
field, and the internal fields that are stripped from write payloads.
The physical table reference is derived from the canonical name:

	registry.RegisterModel[Widget](registry.Model{
	    Base:     "items",            // table becomes "items_widget"
	    Name:     "widget",
	    Internal: []string{"rev$"},
	})

The registry is thread-safe and should be populated during
initialization, typically in init() functions.
*/
package registry
