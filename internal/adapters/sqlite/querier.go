// Package sqlite contains SQLite implementations of the repository
// interfaces in ports/secondary.
package sqlite

import (
	"context"
	"database/sql"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the package's
// query helpers can run standalone or inside a transaction. The
// dashboard and score repositories rely on this to compose multiple
// reads into one consistent snapshot.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
