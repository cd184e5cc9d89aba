// Package store provides the persistence layer for sshcm.
//
// The package defines the [Store] interface which abstracts all
// database operations over the three tables of the connection store:
// global metadata, named default settings, and connection profiles.
//
// # Backends
//
// The storage backend is selected at build time using build tags:
//   - Default: SQLite (modernc.org/sqlite, pure Go)
//   - With -tags bolt: BoltDB buckets with JSON values
//
// Both backends own schema creation and versioned migration. Opening
// a store written by a newer tool version fails with
// [ErrSchemaTooNew]; older stores are migrated step by step, each
// step in its own transaction.
//
// # Usage
//
//	st, err := store.Open(path)
//	if err != nil { ... }
//	defer st.Close()
package store
