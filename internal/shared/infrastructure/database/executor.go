package database

import (
	"context"
	"database/sql"
)

// Row is a single result row (pgx.Row or *sql.Row).
type Row interface {
	// Scan copies the row's columns into dest. A missing row surfaces
	// here as sql.ErrNoRows or pgx.ErrNoRows.
	Scan(dest ...any) error
}

// Rows is a result cursor (pgx.Rows or *sql.Rows).
type Rows interface {
	// Next advances to the next row and reports whether one exists.
	Next() bool
	// Scan copies the current row into dest.
	Scan(dest ...any) error
	// Close releases the cursor. It is safe to call more than once.
	Close() error
	// Err returns any error hit while iterating.
	Err() error
}

// Result reports the effect of an Exec.
type Result interface {
	// RowsAffected returns the number of rows changed by the statement.
	RowsAffected() (int64, error)
}

// Executor runs statements against a connection or a transaction. Queries
// use ? placeholders; see Rebind for postgres.
type Executor interface {
	// Exec executes a statement that doesn't return rows.
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	// QueryRow executes a query that returns at most one row.
	QueryRow(ctx context.Context, query string, args ...any) Row
	// Query executes a query that returns multiple rows.
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Transaction is an Executor that can be committed or rolled back.
type Transaction interface {
	Executor
	// Commit makes the transaction's writes visible.
	Commit(ctx context.Context) error
	// Rollback discards the transaction's writes.
	Rollback(ctx context.Context) error
}

// Connection is a pooled database handle.
type Connection interface {
	Executor
	// BeginTx starts a transaction.
	BeginTx(ctx context.Context) (Transaction, error)
	// Close releases the handle and its pool.
	Close() error
	// Ping checks the database is reachable.
	Ping(ctx context.Context) error
	// Driver reports which backend this connection talks to.
	Driver() Driver
}

// WrapSQLRows adapts *sql.Rows to Rows.
func WrapSQLRows(r *sql.Rows) Rows {
	return sqlRows{r}
}

// sqlRows satisfies Rows through the embedded *sql.Rows.
type sqlRows struct {
	*sql.Rows
}
