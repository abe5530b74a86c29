package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// AddWaterCommand logs a drink.
type AddWaterCommand struct {
	AccountID uuid.UUID
	Amount    int
}

// AddWaterHandler handles the AddWaterCommand.
type AddWaterHandler struct {
	deps Deps
}

// NewAddWaterHandler creates a new AddWaterHandler.
func NewAddWaterHandler(deps Deps) *AddWaterHandler {
	return &AddWaterHandler{deps: deps}
}

func (h *AddWaterHandler) Handle(ctx context.Context, cmd AddWaterCommand) (*domain.DailyRecord, error) {
	return h.deps.mutate(ctx, cmd.AccountID, func(r *domain.DailyRecord, now time.Time) error {
		_, err := r.AddWater(cmd.Amount, now)
		return err
	})
}

// RemoveWaterCommand corrects the water counter downwards.
type RemoveWaterCommand struct {
	AccountID uuid.UUID
	Amount    int
}

// RemoveWaterHandler handles the RemoveWaterCommand.
type RemoveWaterHandler struct {
	deps Deps
}

// NewRemoveWaterHandler creates a new RemoveWaterHandler.
func NewRemoveWaterHandler(deps Deps) *RemoveWaterHandler {
	return &RemoveWaterHandler{deps: deps}
}

func (h *RemoveWaterHandler) Handle(ctx context.Context, cmd RemoveWaterCommand) (*domain.DailyRecord, error) {
	return h.deps.mutate(ctx, cmd.AccountID, func(r *domain.DailyRecord, _ time.Time) error {
		return r.RemoveWater(cmd.Amount)
	})
}

// ToggleRemindersHandler flips the hydration reminders flag.
type ToggleRemindersHandler struct {
	deps Deps
}

// NewToggleRemindersHandler creates a new ToggleRemindersHandler.
func NewToggleRemindersHandler(deps Deps) *ToggleRemindersHandler {
	return &ToggleRemindersHandler{deps: deps}
}

// Handle returns the new flag value.
func (h *ToggleRemindersHandler) Handle(ctx context.Context, accountID uuid.UUID) (bool, error) {
	record, err := h.deps.mutate(ctx, accountID, func(r *domain.DailyRecord, _ time.Time) error {
		r.ToggleReminders()
		return nil
	})
	if err != nil {
		return false, err
	}
	return record.Hydration.RemindersEnabled, nil
}
