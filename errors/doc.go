/*
Package errors provides semantic error types for the rethinkstore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrStore             = errors.New("store error")
	    ErrNoModel           = errors.New("no entity model registered for type")
	    ErrAlreadyRegistered = errors.New("already registered")
	    ErrInvalidQuery      = errors.New("invalid query")
	    ErrNotConnected      = errors.New("not connected")
	)

Every failure reported by the RethinkDB driver is wrapped in a StoreError
carrying the store name and the operation that failed:

	items, err := store.List(ctx, q)
	if err != nil {
	    if errors.IsStoreError(err) {
	        // driver-level failure, logged once by the store already
	    }
	    return err
	}

Query maps are validated when a Query is constructed, not when it is
executed; malformed modifiers surface as QueryError:

	q, err := storagemodels.ParseQueryMap(raw)
	if errors.IsInvalidQuery(err) { ... }

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
