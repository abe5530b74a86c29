package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/google/uuid"
)

// KVCredentialRepository stores bcrypt hashes as plain strings.
type KVCredentialRepository struct {
	store kvstore.Store
}

// NewKVCredentialRepository creates a credential repository.
func NewKVCredentialRepository(store kvstore.Store) *KVCredentialRepository {
	return &KVCredentialRepository{store: store}
}

func (r *KVCredentialRepository) Save(ctx context.Context, accountID uuid.UUID, hash string) error {
	if err := r.store.Set(ctx, kvstore.CredentialKey(accountID), []byte(hash)); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *KVCredentialRepository) Find(ctx context.Context, accountID uuid.UUID) (string, error) {
	raw, err := r.store.Get(ctx, kvstore.CredentialKey(accountID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	return string(raw), nil
}
