// Package postgres implements the internal/store interfaces on PostgreSQL.
//
// Queries go through database/sql with the pgx stdlib driver. The schema is
// kept as goose migrations embedded in the binary (see Migrate).
package postgres
