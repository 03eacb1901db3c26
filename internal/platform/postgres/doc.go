// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces, using the pgx driver through database/sql. Schema management
// is handled by goose migrations embedded in this package.
package postgres
