// Package sqlstore implements the store interfaces on database/sql for two
// backends: PostgreSQL through pgx's stdlib driver and an embedded SQLite
// database through modernc.org/sqlite. Both share one set of queries; the
// Dialect rebinds placeholders and selects the embedded goose migrations.
package sqlstore
