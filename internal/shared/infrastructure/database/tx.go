package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

type txInfo struct {
	tx    Transaction
	owned bool
}

// ExecutorFromContext returns the transaction stored by a UnitOfWork, or conn
// when the call is not part of one.
func ExecutorFromContext(ctx context.Context, conn Connection) Executor {
	if info, ok := ctx.Value(txKey{}).(txInfo); ok && info.tx != nil {
		return info.tx
	}
	return conn
}

// UnitOfWork runs a group of statements in one transaction. Nested Begin
// calls join the outer transaction and leave commit to its owner.
type UnitOfWork struct {
	conn Connection
}

// NewUnitOfWork creates a UnitOfWork over conn.
func NewUnitOfWork(conn Connection) *UnitOfWork {
	return &UnitOfWork{conn: conn}
}

// Begin starts a transaction and stores it in the returned context.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if info, ok := ctx.Value(txKey{}).(txInfo); ok && info.tx != nil {
		return context.WithValue(ctx, txKey{}, txInfo{tx: info.tx}), nil
	}

	tx, err := u.conn.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, txKey{}, txInfo{tx: tx, owned: true}), nil
}

// Commit commits the transaction if this unit started it.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	info, ok := ctx.Value(txKey{}).(txInfo)
	if !ok {
		return errors.New("no transaction in context")
	}
	if !info.owned {
		return nil
	}
	return info.tx.Commit(ctx)
}

// Rollback rolls back the transaction if this unit started it.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	info, ok := ctx.Value(txKey{}).(txInfo)
	if !ok {
		return errors.New("no transaction in context")
	}
	if !info.owned {
		return nil
	}
	return info.tx.Rollback(ctx)
}

// IsNoRows reports whether err means a query matched no row, for either driver.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
