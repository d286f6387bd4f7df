package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database operations shared by connections and
// transactions.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}
