package application

import "context"

// UnitOfWork groups several store writes so they commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UnitOfWorkFunc is a function that executes within a unit of work.
type UnitOfWorkFunc func(ctx context.Context) error

// WithUnitOfWork executes fn within a unit of work, rolling back on error.
func WithUnitOfWork(ctx context.Context, uow UnitOfWork, fn UnitOfWorkFunc) error {
	if uow == nil {
		return fn(ctx)
	}

	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}

// NopUnitOfWork is used by stores without transactions (memory, redis).
// Writes made inside it are applied immediately.
type NopUnitOfWork struct{}

func (NopUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (NopUnitOfWork) Commit(context.Context) error                       { return nil }
func (NopUnitOfWork) Rollback(context.Context) error                     { return nil }
