package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// Deps are the collaborators shared by the tracking command handlers.
type Deps struct {
	Records   domain.Repository
	UoW       sharedApplication.UnitOfWork
	Publisher eventbus.Publisher
	Clock     sharedDomain.Clock
	Logger    *slog.Logger
}

// mutate loads the record, rolls it over to today, applies fn and saves it.
// Events raised by fn are published once the save commits.
func (d Deps) mutate(ctx context.Context, accountID uuid.UUID, fn func(r *domain.DailyRecord, now time.Time) error) (*domain.DailyRecord, error) {
	now := d.Clock.Now()

	var record *domain.DailyRecord
	err := sharedApplication.WithUnitOfWork(ctx, d.UoW, func(txCtx context.Context) error {
		var err error
		record, err = d.Records.Load(txCtx, accountID)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("account %s: %w", accountID, domain.ErrRecordNotFound)
		}

		record.ResetDailyData(now)
		record.RegisterDailyActivity(now)
		if err := fn(record, now); err != nil {
			return err
		}
		return d.Records.Save(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	_ = eventbus.PublishEvents(ctx, d.Publisher, d.logger(), record.DomainEvents())
	record.ClearDomainEvents()
	return record, nil
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
