package commands

import (
	"context"
	"slices"

	"github.com/felixgeelhaar/fitsmart/internal/meals/domain"
	trackingCommands "github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	trackingDomain "github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// LogSuggestionCommand logs a catalog suggestion as today's meal.
type LogSuggestionCommand struct {
	AccountID    uuid.UUID
	SuggestionID string
	Time         string
}

// LogSuggestionHandler handles the LogSuggestionCommand.
type LogSuggestionHandler struct {
	addMeal *trackingCommands.AddMealHandler
}

// NewLogSuggestionHandler creates a new LogSuggestionHandler.
func NewLogSuggestionHandler(addMeal *trackingCommands.AddMealHandler) *LogSuggestionHandler {
	return &LogSuggestionHandler{addMeal: addMeal}
}

func (h *LogSuggestionHandler) Handle(ctx context.Context, cmd LogSuggestionCommand) (*trackingDomain.MealEntry, error) {
	s, ok := domain.SuggestionByID(cmd.SuggestionID)
	if !ok {
		return nil, domain.NotFound(cmd.SuggestionID)
	}
	return h.addMeal.Handle(ctx, trackingCommands.AddMealCommand{
		AccountID: cmd.AccountID,
		Meal: trackingDomain.MealInput{
			Name:     s.Name,
			Time:     cmd.Time,
			Calories: s.Calories,
			Protein:  s.Protein,
			Carbs:    s.Carbs,
			Fats:     s.Fats,
			Items:    slices.Clone(s.Ingredients),
		},
	})
}
