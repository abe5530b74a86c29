package queries

import (
	"context"
	"fmt"
	"time"

	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
)

// Macros sums protein, carbs and fats in grams.
type Macros struct {
	Protein int
	Carbs   int
	Fats    int
}

// DashboardDTO summarizes today against the account's goals.
type DashboardDTO struct {
	Date             string
	Name             string
	Goals            onboardingDomain.Targets
	CaloriesConsumed int
	CaloriesBurned   int
	CalorieProgress  float64
	WaterConsumed    int
	WaterGlasses     int
	WaterProgress    float64
	WorkoutsDone     int
	WorkoutProgress  float64
	Macros           Macros
	Streak           int
	MealsToday       int
}

// GetDashboardHandler builds the dashboard summary.
type GetDashboardHandler struct {
	records domain.Repository
	clock   sharedDomain.Clock
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(records domain.Repository, clock sharedDomain.Clock) *GetDashboardHandler {
	return &GetDashboardHandler{records: records, clock: clock}
}

func (h *GetDashboardHandler) Handle(ctx context.Context, accountID uuid.UUID) (*DashboardDTO, error) {
	record, err := loadRecord(ctx, h.records, accountID)
	if err != nil {
		return nil, err
	}
	return Dashboard(record, h.clock.Now()), nil
}

// Dashboard computes the summary for an already loaded record.
func Dashboard(record *domain.DailyRecord, now time.Time) *DashboardDTO {
	goals := domain.Goals(record.Profile)
	today := record.Today(now)

	dto := &DashboardDTO{
		Date:          today.Date,
		Name:          "Athlete",
		Goals:         goals,
		WaterConsumed: today.WaterConsumed,
		WaterGlasses:  domain.Glasses(today.WaterConsumed),
		WorkoutsDone:  len(record.Workouts.Completed),
		Streak:        record.ConsecutiveStreak(now),
		MealsToday:    len(today.Meals),
	}
	if record.Profile != nil && record.Profile.Name != "" {
		dto.Name = record.Profile.Name
	}
	for _, m := range today.Meals {
		dto.CaloriesConsumed += m.Calories
		dto.Macros.Protein += m.Protein
		dto.Macros.Carbs += m.Carbs
		dto.Macros.Fats += m.Fats
	}
	for _, w := range today.Workouts {
		dto.CaloriesBurned += w.CaloriesBurned
	}

	dto.CalorieProgress = domain.Progress(dto.CaloriesConsumed, goals.DailyCalories)
	dto.WaterProgress = domain.Progress(dto.WaterConsumed, goals.DailyWater)
	dto.WorkoutProgress = domain.Progress(dto.WorkoutsDone, goals.WeeklyWorkouts)
	return dto
}

func loadRecord(ctx context.Context, records domain.Repository, accountID uuid.UUID) (*domain.DailyRecord, error) {
	record, err := records.Load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, domain.ErrRecordNotFound)
	}
	return record, nil
}
