// Package database owns the PostgreSQL connection and schema migrations.
//
// The connection is a plain database/sql handle over the pgx stdlib
// driver, opened once at startup and injected into repositories. Schema
// migrations are embedded goose SQL files applied by Migrate before the
// server accepts traffic.
package database
