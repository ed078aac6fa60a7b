/*
Package rethinkdb implements the driver boundary over the official
RethinkDB Go driver (gopkg.in/rethinkdb/rethinkdb-go.v6).

Connect establishes one shared session reused by every operation:

	db, err := rethinkdb.Connect(rethinkdb.Options{
	    Host:     "localhost",
	    Port:     28015,
	    Database: "app",
	})

An already-established session can be adopted instead via
Options.Session. Point lookups (Get) resolve to Single/Nothing tagged
responses; every other read yields a Stream whose cursor the caller
drains. Deletes pass ReturnChanges through to the server so removed
records can be reconstructed from old_val snapshots.
*/
package rethinkdb
