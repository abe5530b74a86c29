package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// AddMealCommand logs a meal for today.
type AddMealCommand struct {
	AccountID uuid.UUID
	Meal      domain.MealInput
}

// AddMealHandler handles the AddMealCommand.
type AddMealHandler struct {
	deps Deps
}

// NewAddMealHandler creates a new AddMealHandler.
func NewAddMealHandler(deps Deps) *AddMealHandler {
	return &AddMealHandler{deps: deps}
}

func (h *AddMealHandler) Handle(ctx context.Context, cmd AddMealCommand) (*domain.MealEntry, error) {
	var entry domain.MealEntry
	_, err := h.deps.mutate(ctx, cmd.AccountID, func(r *domain.DailyRecord, now time.Time) error {
		var err error
		entry, err = r.AddMeal(cmd.Meal, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteMealCommand removes a logged meal.
type DeleteMealCommand struct {
	AccountID uuid.UUID
	MealID    uuid.UUID
}

// DeleteMealHandler handles the DeleteMealCommand.
type DeleteMealHandler struct {
	deps Deps
}

// NewDeleteMealHandler creates a new DeleteMealHandler.
func NewDeleteMealHandler(deps Deps) *DeleteMealHandler {
	return &DeleteMealHandler{deps: deps}
}

func (h *DeleteMealHandler) Handle(ctx context.Context, cmd DeleteMealCommand) error {
	_, err := h.deps.mutate(ctx, cmd.AccountID, func(r *domain.DailyRecord, _ time.Time) error {
		return r.DeleteMeal(cmd.MealID)
	})
	return err
}
