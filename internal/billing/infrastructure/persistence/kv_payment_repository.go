package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/crypto"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/google/uuid"
)

type paymentDocument struct {
	AccountID  uuid.UUID          `json:"account_id"`
	Plan       domain.Plan        `json:"plan"`
	Info       domain.PaymentInfo `json:"info"`
	RecordedAt time.Time          `json:"recorded_at"`
}

// sealedDocument wraps an encrypted paymentDocument.
type sealedDocument struct {
	Sealed string `json:"sealed"`
}

// KVPaymentRepository stores the mock payment blob under fitsmart:payment:<id>.
// When an encrypter is configured the blob is sealed with it.
type KVPaymentRepository struct {
	store     kvstore.Store
	encrypter crypto.Encrypter
	logger    *slog.Logger
}

// NewKVPaymentRepository creates a payment repository. encrypter may be nil.
func NewKVPaymentRepository(store kvstore.Store, encrypter crypto.Encrypter, logger *slog.Logger) *KVPaymentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVPaymentRepository{store: store, encrypter: encrypter, logger: logger}
}

func (r *KVPaymentRepository) Save(ctx context.Context, record domain.PaymentRecord) error {
	doc := paymentDocument{
		AccountID:  record.AccountID,
		Plan:       record.Plan,
		Info:       record.Info,
		RecordedAt: record.RecordedAt.UTC(),
	}

	var value any = doc
	if r.encrypter != nil {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode payment: %w", err)
		}
		sealed, err := crypto.EncryptToString(r.encrypter, raw)
		if err != nil {
			return fmt.Errorf("seal payment: %w", err)
		}
		value = sealedDocument{Sealed: sealed}
	}

	if err := kvstore.SetJSON(ctx, r.store, kvstore.PaymentKey(record.AccountID), value); err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

// FindByAccountID returns nil when no readable record exists.
func (r *KVPaymentRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.PaymentRecord, error) {
	raw, err := r.store.Get(ctx, kvstore.PaymentKey(accountID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}

	var sealed sealedDocument
	if err := json.Unmarshal(raw, &sealed); err != nil {
		r.logger.WarnContext(ctx, "payment record is malformed", "account_id", accountID, "error", err)
		return nil, nil
	}
	if sealed.Sealed != "" {
		if r.encrypter == nil {
			r.logger.WarnContext(ctx, "payment record is sealed but no encryption key is configured", "account_id", accountID)
			return nil, nil
		}
		if raw, err = crypto.DecryptString(r.encrypter, sealed.Sealed); err != nil {
			r.logger.WarnContext(ctx, "payment record cannot be unsealed", "account_id", accountID, "error", err)
			return nil, nil
		}
	}

	var doc paymentDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.WarnContext(ctx, "payment record is malformed", "account_id", accountID, "error", err)
		return nil, nil
	}
	return &domain.PaymentRecord{
		AccountID:  doc.AccountID,
		Plan:       doc.Plan,
		Info:       doc.Info,
		RecordedAt: doc.RecordedAt,
	}, nil
}
