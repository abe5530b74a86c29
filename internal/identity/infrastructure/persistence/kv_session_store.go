package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/google/uuid"
)

// KVSessionStore keeps the signed-in account id under fitsmart:session:current.
type KVSessionStore struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewKVSessionStore creates a session store.
func NewKVSessionStore(store kvstore.Store, logger *slog.Logger) *KVSessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVSessionStore{store: store, logger: logger}
}

func (s *KVSessionStore) Current(ctx context.Context) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := kvstore.GetJSON(ctx, s.store, kvstore.SessionKey, &id)
	switch {
	case err == nil:
		return id, id != uuid.Nil, nil
	case errors.Is(err, kvstore.ErrKeyNotFound):
		return uuid.Nil, false, nil
	case errors.Is(err, kvstore.ErrMalformedData):
		s.logger.WarnContext(ctx, "session pointer is malformed, ignoring", "error", err)
		return uuid.Nil, false, nil
	default:
		return uuid.Nil, false, fmt.Errorf("load session: %w", err)
	}
}

func (s *KVSessionStore) Start(ctx context.Context, accountID uuid.UUID) error {
	if err := kvstore.SetJSON(ctx, s.store, kvstore.SessionKey, accountID); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

func (s *KVSessionStore) End(ctx context.Context) error {
	if err := s.store.Delete(ctx, kvstore.SessionKey); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}
