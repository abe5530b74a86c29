package app

import (
	"context"
	"fmt"
	"log/slog"

	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/fitsmart/pkg/config"
)

// storeBackend is the key-value store selected by configuration, with the
// unit of work that matches it.
type storeBackend struct {
	Store kvstore.Store
	UoW   sharedApplication.UnitOfWork
	Ping  func(ctx context.Context) error
	close func() error
	name  string
}

// Close releases the underlying connection.
func (b *storeBackend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// openStore builds the backend named by cfg.Store. SQL backends are migrated
// before use. Remote backends sit behind a circuit breaker.
func openStore(ctx context.Context, cfg *config.Config, clock sharedDomain.Clock, logger *slog.Logger) (*storeBackend, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return &storeBackend{
			Store: kvstore.NewMemoryStore(),
			UoW:   sharedApplication.NopUnitOfWork{},
			Ping:  func(context.Context) error { return nil },
			name:  config.StoreMemory,
		}, nil

	case config.StoreSQLite:
		if err := database.EnsureDirectory(cfg.SQLitePath); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return openSQLStore(ctx, database.Config{
			Driver:     database.DriverSQLite,
			SQLitePath: cfg.SQLitePath,
		}, clock, logger, false)

	case config.StorePostgres:
		return openSQLStore(ctx, database.Config{
			Driver: database.DriverPostgres,
			URL:    cfg.DatabaseURL,
		}, clock, logger, true)

	case config.StoreRedis:
		client, err := kvstore.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to Redis")
		return &storeBackend{
			Store: kvstore.NewBreakerStore(
				kvstore.NewRedisStore(client, cfg.RedisNamespace),
				kvstore.DefaultBreakerConfig("redis"),
				logger,
			),
			UoW:   sharedApplication.NopUnitOfWork{},
			Ping:  func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: client.Close,
			name:  config.StoreRedis,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store: %s", cfg.Store)
	}
}

func openSQLStore(ctx context.Context, dbCfg database.Config, clock sharedDomain.Clock, logger *slog.Logger, remote bool) (*storeBackend, error) {
	conn, err := database.NewConnection(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("running migrations", "driver", conn.Driver())
	if err := migrations.Run(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	var store kvstore.Store = kvstore.NewSQLStore(conn, clock)
	if remote {
		store = kvstore.NewBreakerStore(store, kvstore.DefaultBreakerConfig(conn.Driver().String()), logger)
	}

	return &storeBackend{
		Store: store,
		UoW:   database.NewUnitOfWork(conn),
		Ping:  conn.Ping,
		close: conn.Close,
		name:  conn.Driver().String(),
	}, nil
}
