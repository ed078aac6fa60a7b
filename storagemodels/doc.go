/*
Package storagemodels defines the store-agnostic query model shared by
every rethinkstore backend.

Query:
A typed description of a read or delete. Filters are plain field-equality
predicates; everything that shapes the result — sorting, paging, field
projection, native passthrough — lives in named optional fields:

	limit := int64(2)
	q := &storagemodels.Query{
	    Filter: map[string]interface{}{"status": "active"},
	    Sort:   &storagemodels.SortKey{Field: "createdAt", Descending: true},
	    Limit:  &limit,
	}

ParseQueryMap:
Builds a Query from a legacy-style map in which modifiers ride alongside
data filters under reserved "$"-suffixed keys:

	q, err := storagemodels.ParseQueryMap(map[string]interface{}{
	    "status": "active",
	    "sort$":  map[string]interface{}{"createdAt": -1},
	    "limit$": 2,
	})

Modifier shapes are validated at construction time; execution never sees a
malformed query. SanitizeFilter is the pure reserved-key stripper used by
ParseQueryMap and is exported for callers that only need the filter map.
*/
package storagemodels
