package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	billingDomain "github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/google/uuid"
)

// accountDocument is the JSON stored under fitsmart:account:<id>.
type accountDocument struct {
	ID               uuid.UUID                  `json:"id"`
	Email            string                     `json:"email"`
	Name             string                     `json:"name"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
	Version          int                        `json:"version"`
	HasCompletedQuiz bool                       `json:"has_completed_quiz"`
	Subscription     billingDomain.Subscription `json:"subscription"`
}

// KVAccountRepository implements domain.AccountRepository on a kvstore.Store.
type KVAccountRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewKVAccountRepository creates a new account repository.
func NewKVAccountRepository(store kvstore.Store, logger *slog.Logger) *KVAccountRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVAccountRepository{store: store, logger: logger}
}

// Save writes the account document and, for new accounts, appends the id to
// the index.
func (r *KVAccountRepository) Save(ctx context.Context, account *domain.Account) error {
	stored, err := r.loadDocument(ctx, account.ID())
	if err != nil {
		return err
	}
	storedVersion := 0
	if stored != nil {
		storedVersion = stored.Version
	}
	if storedVersion != account.Version() {
		return fmt.Errorf("account %s: %w", account.ID(), sharedDomain.ErrConcurrentModification)
	}

	doc := toDocument(account)
	doc.Version = account.Version() + 1
	if err := kvstore.SetJSON(ctx, r.store, kvstore.AccountKey(account.ID()), doc); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	if stored == nil {
		ids, err := r.index(ctx)
		if err != nil {
			return err
		}
		ids = append(ids, account.ID())
		if err := kvstore.SetJSON(ctx, r.store, kvstore.AccountIndexKey, ids); err != nil {
			return fmt.Errorf("save account index: %w", err)
		}
	}

	account.IncrementVersion()
	return nil
}

// FindByID returns nil when the account is absent or its document is malformed.
func (r *KVAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	doc, err := r.loadDocument(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return r.toDomain(ctx, doc), nil
}

// FindByEmail scans the index for an exact email match.
func (r *KVAccountRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.Account, error) {
	accounts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Email().Equals(email) {
			return a, nil
		}
	}
	return nil, nil
}

// List returns every readable account in registration order.
func (r *KVAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	ids, err := r.index(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(ids))
	for _, id := range ids {
		a, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if a != nil {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (r *KVAccountRepository) index(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := kvstore.GetJSON(ctx, r.store, kvstore.AccountIndexKey, &ids)
	switch {
	case err == nil:
		return ids, nil
	case errors.Is(err, kvstore.ErrKeyNotFound):
		return nil, nil
	case errors.Is(err, kvstore.ErrMalformedData):
		r.logger.WarnContext(ctx, "account index is malformed, treating as empty", "error", err)
		return nil, nil
	default:
		return nil, fmt.Errorf("load account index: %w", err)
	}
}

func (r *KVAccountRepository) loadDocument(ctx context.Context, id uuid.UUID) (*accountDocument, error) {
	var doc accountDocument
	err := kvstore.GetJSON(ctx, r.store, kvstore.AccountKey(id), &doc)
	switch {
	case err == nil:
		return &doc, nil
	case errors.Is(err, kvstore.ErrKeyNotFound):
		return nil, nil
	case errors.Is(err, kvstore.ErrMalformedData):
		r.logger.WarnContext(ctx, "account document is malformed", "account_id", id, "error", err)
		return nil, nil
	default:
		return nil, fmt.Errorf("load account %s: %w", id, err)
	}
}

func toDocument(a *domain.Account) accountDocument {
	return accountDocument{
		ID:               a.ID(),
		Email:            a.Email().String(),
		Name:             a.Name().String(),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
		Version:          a.Version(),
		HasCompletedQuiz: a.HasCompletedQuiz(),
		Subscription:     a.Subscription(),
	}
}

func (r *KVAccountRepository) toDomain(ctx context.Context, doc *accountDocument) *domain.Account {
	email, err := domain.NewEmail(doc.Email)
	if err != nil {
		r.logger.WarnContext(ctx, "stored account has invalid email", "account_id", doc.ID, "error", err)
		return nil
	}
	name, err := domain.NewName(doc.Name)
	if err != nil {
		r.logger.WarnContext(ctx, "stored account has invalid name", "account_id", doc.ID, "error", err)
		return nil
	}
	if err := doc.Subscription.Validate(); err != nil {
		r.logger.WarnContext(ctx, "stored account has invalid subscription", "account_id", doc.ID, "error", err)
		return nil
	}
	return domain.RehydrateAccount(
		doc.ID,
		email,
		name,
		doc.CreatedAt,
		doc.UpdatedAt,
		doc.Version,
		doc.HasCompletedQuiz,
		doc.Subscription,
	)
}
