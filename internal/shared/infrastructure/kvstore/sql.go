package kvstore

import (
	"context"
	"fmt"
	"time"

	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/database"
)

// SQLStore keeps values in the kv_entries table of a SQLite or PostgreSQL
// database. Calls made with a unit-of-work context join its transaction.
type SQLStore struct {
	conn  database.Connection
	clock sharedDomain.Clock
}

// NewSQLStore creates a store over an already migrated connection.
func NewSQLStore(conn database.Connection, clock sharedDomain.Clock) *SQLStore {
	return &SQLStore{conn: conn, clock: clock}
}

func (s *SQLStore) exec(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, s.conn)
}

func (s *SQLStore) q(query string) string {
	return database.Rebind(s.conn.Driver(), query)
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	var value string
	err := s.exec(ctx).QueryRow(ctx, s.q("SELECT value FROM kv_entries WHERE key = ?"), key).Scan(&value)
	if database.IsNoRows(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	now := s.clock.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.exec(ctx).Exec(ctx, s.q(query), key, string(value), now); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if _, err := s.exec(ctx).Exec(ctx, s.q("DELETE FROM kv_entries WHERE key = ?"), key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

var _ Store = (*SQLStore)(nil)
