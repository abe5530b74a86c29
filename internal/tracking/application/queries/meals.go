package queries

import (
	"context"

	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// TodayMealsDTO lists the meals dated today with their totals.
type TodayMealsDTO struct {
	Date     string
	Meals    []domain.MealEntry
	Calories int
	Macros   Macros
}

// TodayMealsHandler lists today's logged meals.
type TodayMealsHandler struct {
	records domain.Repository
	clock   sharedDomain.Clock
}

// NewTodayMealsHandler creates a new TodayMealsHandler.
func NewTodayMealsHandler(records domain.Repository, clock sharedDomain.Clock) *TodayMealsHandler {
	return &TodayMealsHandler{records: records, clock: clock}
}

func (h *TodayMealsHandler) Handle(ctx context.Context, accountID uuid.UUID) (*TodayMealsDTO, error) {
	record, err := loadRecord(ctx, h.records, accountID)
	if err != nil {
		return nil, err
	}

	today := record.Today(h.clock.Now())
	dto := &TodayMealsDTO{Date: today.Date, Meals: today.Meals}
	for _, m := range today.Meals {
		dto.Calories += m.Calories
		dto.Macros.Protein += m.Protein
		dto.Macros.Carbs += m.Carbs
		dto.Macros.Fats += m.Fats
	}
	return dto, nil
}
