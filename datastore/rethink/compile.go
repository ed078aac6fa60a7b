/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethink

import (
	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/storagemodels"
)

// compileQuery applies q's modifiers to the base selection in a fixed
// order: sort, then limit, then skip, then field projection. Projection
// runs last so it cannot strip a sort key before ordering; limit and
// skip operate on the already-sorted set.
//
// A native query bypasses compilation entirely: the caller's selection
// is returned as-is and structured filtering is skipped, base included.
// Absent modifiers leave their stage as a no-op.
func compileQuery(base driver.Selection, q *storagemodels.Query) driver.Selection {
	if q == nil {
		return base
	}
	if q.Native != nil {
		return q.Native
	}

	sel := base
	if q.Sort != nil {
		sel = sel.OrderBy(q.Sort.Field, q.Sort.Descending)
	}
	if q.Limit != nil {
		sel = sel.Limit(*q.Limit)
	}
	if q.Skip != nil {
		sel = sel.Skip(*q.Skip)
	}
	if len(q.Fields) > 0 {
		sel = sel.Pluck(q.Fields...)
	}
	return sel
}
