package queries

import (
	"context"

	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// HydrationDTO is today's water intake against the goal.
type HydrationDTO struct {
	Consumed         int
	Goal             int
	Glasses          int
	GoalGlasses      int
	Progress         float64
	Status           domain.HydrationStatus
	Tip              string
	RemindersEnabled bool
	Log              []domain.WaterEntry
}

// GetHydrationHandler builds the hydration view.
type GetHydrationHandler struct {
	records domain.Repository
	clock   sharedDomain.Clock
}

// NewGetHydrationHandler creates a new GetHydrationHandler.
func NewGetHydrationHandler(records domain.Repository, clock sharedDomain.Clock) *GetHydrationHandler {
	return &GetHydrationHandler{records: records, clock: clock}
}

func (h *GetHydrationHandler) Handle(ctx context.Context, accountID uuid.UUID) (*HydrationDTO, error) {
	record, err := loadRecord(ctx, h.records, accountID)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	today := record.Today(now)
	goal := domain.Goals(record.Profile).DailyWater
	progress := domain.Progress(today.WaterConsumed, goal)

	return &HydrationDTO{
		Consumed:         today.WaterConsumed,
		Goal:             goal,
		Glasses:          domain.Glasses(today.WaterConsumed),
		GoalGlasses:      domain.Glasses(goal),
		Progress:         progress,
		Status:           domain.HydrationStatusFor(progress),
		Tip:              domain.HydrationTip(now.UTC().Hour()),
		RemindersEnabled: record.Hydration.RemindersEnabled,
		Log:              today.WaterLog,
	}, nil
}
