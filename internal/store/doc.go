// Package store persists conversion history in SQLite.
//
// Every CLI conversion can be appended as a history record: direction, tier,
// input, output, and quality figures. The database is a plain file, WAL mode,
// single writer. History is an audit log, not a cache; conversion itself
// never reads it.
package store
