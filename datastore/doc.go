/*
Package datastore defines the core interfaces for rethinkstore's data
persistence layer.

The main interface is EntityStore[T], which provides generic CRUD
operations for any entity type T:

	type EntityStore[T any] interface {
	    Save(ctx context.Context, entity T) (T, error)
	    Load(ctx context.Context, q *storagemodels.Query) (*T, error)
	    List(ctx context.Context, q *storagemodels.Query) ([]T, error)
	    Remove(ctx context.Context, q *storagemodels.Query) ([]T, error)
	    Native() (driver.Database, driver.Table)
	    Close() error
	}

Implementations:
  - rethink: the query-translation core over the driver boundary

The package uses Go generics to ensure type safety at compile time while
keeping the query model independent of the underlying database.
*/
package datastore
