package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the querying subset shared by *pgxpool.Pool and pgx.Tx. Holding it
// instead of the pool lets a repository be rebound to an open transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxRunner executes a function inside one database transaction, committing
// on success and rolling back when the function returns an error.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
