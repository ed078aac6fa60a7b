/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rethinkdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/suparena/rethinkstore/driver"
	r "gopkg.in/rethinkdb/rethinkdb-go.v6"
)

// Default connection settings, matching the RethinkDB server defaults.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 28015
	DefaultDatabase = "test"
)

// Options configures the connection established by Connect.
type Options struct {
	Host     string
	Port     int
	Database string

	// Session supplies an already-established driver session, bypassing
	// connection establishment entirely.
	Session *r.Session
}

func (o Options) address() string {
	host := o.Host
	if host == "" {
		host = DefaultHost
	}
	port := o.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("%s:%d", host, port)
}

func (o Options) database() string {
	if o.Database == "" {
		return DefaultDatabase
	}
	return o.Database
}

// Database implements driver.Database over a single shared RethinkDB
// session. The session is established once and reused by every
// operation; there is no pooling or retry at this layer.
type Database struct {
	session *r.Session
}

// Connect establishes the shared session, or adopts the one supplied in
// opts.Session.
func Connect(opts Options) (*Database, error) {
	if opts.Session != nil {
		return &Database{session: opts.Session}, nil
	}

	session, err := r.Connect(r.ConnectOpts{
		Address:  opts.address(),
		Database: opts.database(),
	})
	if err != nil {
		return nil, fmt.Errorf("rethinkdb connect %s: %w", opts.address(), err)
	}
	return &Database{session: session}, nil
}

// Session exposes the raw driver session for native escape use.
func (d *Database) Session() *r.Session {
	return d.session
}

// Table returns a handle on the named table.
func (d *Database) Table(name string) driver.Table {
	return table{
		selection: selection{term: r.Table(name), session: d.session},
		name:      name,
	}
}

// Close releases the shared session. Calling Close without a session is
// a no-op success.
func (d *Database) Close() error {
	if d == nil || d.session == nil {
		return nil
	}
	return d.session.Close()
}

// selection wraps a ReQL term. Terms are immutable, so builder methods
// compose by value.
type selection struct {
	term    r.Term
	session *r.Session
	// point marks a Get selection, which resolves to a single document
	// rather than a cursor.
	point bool
}

func (s selection) OrderBy(field string, descending bool) driver.Selection {
	if descending {
		s.term = s.term.OrderBy(r.Desc(field))
	} else {
		s.term = s.term.OrderBy(r.Asc(field))
	}
	return s
}

func (s selection) Limit(n int64) driver.Selection {
	s.term = s.term.Limit(n)
	return s
}

func (s selection) Skip(n int64) driver.Selection {
	s.term = s.term.Skip(n)
	return s
}

func (s selection) Pluck(fields ...string) driver.Selection {
	args := make([]interface{}, len(fields))
	for i, f := range fields {
		args[i] = f
	}
	s.term = s.term.Pluck(args...)
	return s
}

func (s selection) Update(doc driver.Document) driver.Mutation {
	return mutation{term: s.term.Update(doc), session: s.session}
}

func (s selection) Delete(opts driver.DeleteOpts) driver.Mutation {
	return mutation{
		term:    s.term.Delete(r.DeleteOpts{ReturnChanges: opts.ReturnChanges}),
		session: s.session,
	}
}

func (s selection) Run(ctx context.Context) (*driver.Response, error) {
	cur, err := s.term.Run(s.session, r.RunOpts{Context: ctx})
	if err != nil {
		return nil, err
	}

	if s.point {
		defer cur.Close()
		var doc driver.Document
		if err := cur.One(&doc); err != nil {
			if errors.Is(err, r.ErrEmptyResult) {
				return &driver.Response{Kind: driver.Nothing}, nil
			}
			return nil, err
		}
		if doc == nil {
			return &driver.Response{Kind: driver.Nothing}, nil
		}
		return &driver.Response{Kind: driver.Single, Doc: doc}, nil
	}

	return &driver.Response{Kind: driver.Stream, Cursor: cursor{cur}}, nil
}

type table struct {
	selection
	name string
}

func (t table) Name() string {
	return t.name
}

func (t table) Get(id string) driver.Selection {
	return selection{term: t.term.Get(id), session: t.session, point: true}
}

func (t table) Filter(predicate driver.Document) driver.Selection {
	if len(predicate) == 0 {
		return t.selection
	}
	return selection{term: t.term.Filter(predicate), session: t.session}
}

func (t table) Insert(doc driver.Document) driver.Mutation {
	return mutation{term: t.term.Insert(doc), session: t.session}
}

type mutation struct {
	term    r.Term
	session *r.Session
}

func (m mutation) RunWrite(ctx context.Context) (*driver.WriteResult, error) {
	wr, err := m.term.RunWrite(m.session, r.RunOpts{Context: ctx})
	if err != nil {
		return nil, err
	}
	if wr.Errors > 0 {
		return nil, fmt.Errorf("rethinkdb write: %s", wr.FirstError)
	}

	res := &driver.WriteResult{
		Inserted:      int64(wr.Inserted),
		Replaced:      int64(wr.Replaced),
		Unchanged:     int64(wr.Unchanged),
		Deleted:       int64(wr.Deleted),
		GeneratedKeys: wr.GeneratedKeys,
	}
	for _, c := range wr.Changes {
		res.Changes = append(res.Changes, driver.Change{
			OldVal: toDocument(c.OldValue),
			NewVal: toDocument(c.NewValue),
		})
	}
	return res, nil
}

func toDocument(v interface{}) driver.Document {
	if doc, ok := v.(map[string]interface{}); ok {
		return doc
	}
	return nil
}

// cursor adapts the driver's cursor to the boundary contract.
type cursor struct {
	cur *r.Cursor
}

func (c cursor) Next(dst *driver.Document) bool {
	return c.cur.Next(dst)
}

func (c cursor) Err() error {
	return c.cur.Err()
}

func (c cursor) Close() error {
	return c.cur.Close()
}
