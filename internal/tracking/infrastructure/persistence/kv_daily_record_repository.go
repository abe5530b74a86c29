package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// KVDailyRecordRepository implements domain.Repository on a kvstore.Store.
// Each record is one JSON document under fitsmart:daily:<account id>.
type KVDailyRecordRepository struct {
	store  kvstore.Store
	clock  sharedDomain.Clock
	logger *slog.Logger
}

// NewKVDailyRecordRepository creates a daily record repository.
func NewKVDailyRecordRepository(store kvstore.Store, clock sharedDomain.Clock, logger *slog.Logger) *KVDailyRecordRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVDailyRecordRepository{store: store, clock: clock, logger: logger}
}

// Save stamps LastAccess and writes the whole record with its version bumped.
func (r *KVDailyRecordRepository) Save(ctx context.Context, record *domain.DailyRecord) error {
	stored, err := r.Load(ctx, record.AccountID)
	if err != nil {
		return err
	}
	storedVersion := 0
	if stored != nil {
		storedVersion = stored.Version
	}
	if storedVersion != record.Version {
		return fmt.Errorf("daily record %s: stored version %d, have %d: %w",
			record.AccountID, storedVersion, record.Version, domain.ErrConcurrentModification)
	}

	doc := *record
	doc.LastAccess = r.clock.Now().UTC()
	doc.Version = record.Version + 1
	if err := kvstore.SetJSON(ctx, r.store, kvstore.DailyRecordKey(record.AccountID), &doc); err != nil {
		return fmt.Errorf("save daily record: %w", err)
	}

	record.LastAccess = doc.LastAccess
	record.Version = doc.Version
	return nil
}

// Load returns nil when no record exists or the stored JSON is malformed.
func (r *KVDailyRecordRepository) Load(ctx context.Context, accountID uuid.UUID) (*domain.DailyRecord, error) {
	var record domain.DailyRecord
	err := kvstore.GetJSON(ctx, r.store, kvstore.DailyRecordKey(accountID), &record)
	switch {
	case err == nil:
		return &record, nil
	case errors.Is(err, kvstore.ErrKeyNotFound):
		return nil, nil
	case errors.Is(err, kvstore.ErrMalformedData):
		r.logger.WarnContext(ctx, "daily record is malformed, treating as absent",
			"account_id", accountID,
			"error", err,
		)
		return nil, nil
	default:
		return nil, fmt.Errorf("load daily record: %w", err)
	}
}
