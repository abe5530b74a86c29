package queries

import (
	"context"
	"slices"

	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// WorkoutDTO is a catalog workout annotated for the account.
type WorkoutDTO struct {
	domain.Workout
	Completed bool
}

// WorkoutPlanDTO is the workout screen.
type WorkoutPlanDTO struct {
	Location       onboardingDomain.WorkoutLocation
	Workouts       []WorkoutDTO
	WeeklyGoal     int
	CompletedCount int
	WeeklyProgress float64
	CaloriesBurned int
	CompletedToday []domain.WorkoutEntry
}

// ListWorkoutsHandler lists the workouts offered to an account.
type ListWorkoutsHandler struct {
	records domain.Repository
	clock   sharedDomain.Clock
}

// NewListWorkoutsHandler creates a new ListWorkoutsHandler.
func NewListWorkoutsHandler(records domain.Repository, clock sharedDomain.Clock) *ListWorkoutsHandler {
	return &ListWorkoutsHandler{records: records, clock: clock}
}

func (h *ListWorkoutsHandler) Handle(ctx context.Context, accountID uuid.UUID) (*WorkoutPlanDTO, error) {
	record, err := loadRecord(ctx, h.records, accountID)
	if err != nil {
		return nil, err
	}

	location := record.WorkoutLocation()
	goal := domain.Goals(record.Profile).WeeklyWorkouts
	today := record.Today(h.clock.Now())

	plan := &WorkoutPlanDTO{
		Location:       location,
		WeeklyGoal:     goal,
		CompletedCount: len(record.Workouts.Completed),
		WeeklyProgress: domain.Progress(len(record.Workouts.Completed), goal),
		CompletedToday: today.Workouts,
	}
	for _, w := range domain.Workouts(location) {
		plan.Workouts = append(plan.Workouts, WorkoutDTO{
			Workout:   w,
			Completed: slices.Contains(record.Workouts.Completed, w.ID),
		})
	}
	for _, w := range today.Workouts {
		plan.CaloriesBurned += w.CaloriesBurned
	}
	return plan, nil
}
