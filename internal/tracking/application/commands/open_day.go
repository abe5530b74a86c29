package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// OpenDayHandler runs when the app opens for an account with access: the
// record is rolled over to today and saved.
type OpenDayHandler struct {
	deps Deps
}

// NewOpenDayHandler creates a new OpenDayHandler.
func NewOpenDayHandler(deps Deps) *OpenDayHandler {
	return &OpenDayHandler{deps: deps}
}

// Handle loads, resets, registers today's activity and saves. An account
// with no readable record gets a fresh one without a profile.
func (h *OpenDayHandler) Handle(ctx context.Context, accountID uuid.UUID) (*domain.DailyRecord, error) {
	now := h.deps.Clock.Now()

	var record *domain.DailyRecord
	err := sharedApplication.WithUnitOfWork(ctx, h.deps.UoW, func(txCtx context.Context) error {
		var err error
		record, err = h.deps.Records.Load(txCtx, accountID)
		if err != nil {
			return err
		}
		if record == nil {
			h.deps.logger().WarnContext(ctx, "no daily record, starting a new one", "account_id", accountID)
			record = domain.NewDailyRecord(accountID, nil, now)
		} else if record.ResetDailyData(now) {
			h.deps.logger().InfoContext(ctx, "new day started", "account_id", accountID, "date", domain.CalendarDate(now))
		}
		record.RegisterDailyActivity(now)
		return h.deps.Records.Save(txCtx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
