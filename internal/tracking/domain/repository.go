package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists daily records.
type Repository interface {
	// Save stamps LastAccess, bumps Version and writes the record. It fails
	// with ErrConcurrentModification when the stored version differs from
	// the record's.
	Save(ctx context.Context, record *DailyRecord) error
	// Load returns nil when the record is absent or unreadable.
	Load(ctx context.Context, accountID uuid.UUID) (*DailyRecord, error)
}
