/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethink

import (
	"context"
	"fmt"
	"testing"

	"github.com/suparena/rethinkstore/driver"
	"github.com/suparena/rethinkstore/driver/memdb"
	"github.com/suparena/rethinkstore/storagemodels"
)

func runIDs(t *testing.T, sel driver.Selection) []string {
	t.Helper()

	resp, err := sel.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var docs []driver.Document
	switch resp.Kind {
	case driver.Nothing:
	case driver.Single:
		docs = []driver.Document{resp.Doc}
	case driver.List:
		docs = resp.Docs
	case driver.Stream:
		defer resp.Cursor.Close()
		var doc driver.Document
		for resp.Cursor.Next(&doc) {
			docs = append(docs, doc)
			doc = nil
		}
		if err := resp.Cursor.Err(); err != nil {
			t.Fatalf("cursor error: %v", err)
		}
	}

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i], _ = doc["id"].(string)
	}
	return ids
}

func compileFixture(t *testing.T) driver.Table {
	t.Helper()
	db := memdb.New()
	for i := 1; i <= 5; i++ {
		db.Seed("items_widget", driver.Document{
			"id": fmt.Sprintf("%c", 'a'+i-1),
			"n":  i,
		})
	}
	return db.Table("items_widget")
}

func TestCompileNoopProperty(t *testing.T) {
	table := compileFixture(t)
	base := table.Filter(driver.Document{})

	plain := runIDs(t, base)
	compiled := runIDs(t, compileQuery(base, &storagemodels.Query{}))

	if len(plain) != len(compiled) {
		t.Fatalf("compile with no modifiers changed the result: %v vs %v", plain, compiled)
	}
	for i := range plain {
		if plain[i] != compiled[i] {
			t.Fatalf("compile with no modifiers changed the result: %v vs %v", plain, compiled)
		}
	}
}

func TestCompileNilQuery(t *testing.T) {
	table := compileFixture(t)

	ids := runIDs(t, compileQuery(table, nil))
	if len(ids) != 5 {
		t.Fatalf("Expected 5 records, got %v", ids)
	}
}

func TestCompileModifierOrder(t *testing.T) {
	// sort desc on n: e,d,c,b,a → limit 3: e,d,c → skip 1: d,c
	table := compileFixture(t)

	limit := int64(3)
	skip := int64(1)
	ids := runIDs(t, compileQuery(table, &storagemodels.Query{
		Sort:   &storagemodels.SortKey{Field: "n", Descending: true},
		Limit:  &limit,
		Skip:   &skip,
		Fields: []string{"id"},
	}))

	if len(ids) != 2 || ids[0] != "d" || ids[1] != "c" {
		t.Fatalf("Expected [d c], got %v", ids)
	}
}

func TestCompileNativeBypass(t *testing.T) {
	db := memdb.New()
	db.Seed("items_widget",
		driver.Document{"id": "a", "status": "active"},
		driver.Document{"id": "b", "status": "inactive"},
	)
	table := db.Table("items_widget")

	base := table.Filter(driver.Document{"status": "active"})
	native := table.Filter(driver.Document{"status": "inactive"})

	limit := int64(1)
	compiled := compileQuery(base, &storagemodels.Query{
		Native: native,
		Sort:   &storagemodels.SortKey{Field: "id"},
		Limit:  &limit,
	})

	// The native selection wins over the base AND over every modifier.
	ids := runIDs(t, compiled)
	if len(ids) != 1 || ids[0] != "b" {
		t.Fatalf("Expected the native selection's result [b], got %v", ids)
	}
}
