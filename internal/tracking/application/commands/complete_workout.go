package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// ErrUnknownWorkout is returned for ids outside the catalog.
var ErrUnknownWorkout = errors.New("unknown workout")

// CompleteWorkoutCommand marks a catalog workout as done today.
type CompleteWorkoutCommand struct {
	AccountID uuid.UUID
	WorkoutID int
}

// CompleteWorkoutResult is the logged entry and the updated weekly count.
type CompleteWorkoutResult struct {
	Entry          domain.WorkoutEntry
	Workout        domain.Workout
	CompletedCount int
}

// CompleteWorkoutHandler handles the CompleteWorkoutCommand.
type CompleteWorkoutHandler struct {
	deps Deps
}

// NewCompleteWorkoutHandler creates a new CompleteWorkoutHandler.
func NewCompleteWorkoutHandler(deps Deps) *CompleteWorkoutHandler {
	return &CompleteWorkoutHandler{deps: deps}
}

func (h *CompleteWorkoutHandler) Handle(ctx context.Context, cmd CompleteWorkoutCommand) (*CompleteWorkoutResult, error) {
	workout, ok := domain.WorkoutByID(cmd.WorkoutID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWorkout, cmd.WorkoutID)
	}

	var entry domain.WorkoutEntry
	record, err := h.deps.mutate(ctx, cmd.AccountID, func(r *domain.DailyRecord, now time.Time) error {
		entry = r.CompleteWorkout(workout, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CompleteWorkoutResult{
		Entry:          entry,
		Workout:        workout,
		CompletedCount: len(record.Workouts.Completed),
	}, nil
}
