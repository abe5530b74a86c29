package domain

import (
	"testing"

	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	"github.com/stretchr/testify/assert"
)

func TestGoals(t *testing.T) {
	defaults := Goals(nil)
	assert.Equal(t, onboardingDomain.Targets{
		DailyCalories: 2000, DailyWater: 2500, WeeklyWorkouts: 3,
		ProteinGoal: 150, CarbsGoal: 200, FatsGoal: 65,
	}, defaults)

	custom := Goals(&onboardingDomain.Profile{Targets: onboardingDomain.Targets{DailyCalories: 2635, DailyWater: 2450}})
	assert.Equal(t, 2635, custom.DailyCalories)
	assert.Equal(t, 2450, custom.DailyWater)
	assert.Equal(t, 3, custom.WeeklyWorkouts)
}

func TestHydrationStatusFor(t *testing.T) {
	tests := []struct {
		progress float64
		want     HydrationStatus
	}{
		{120, HydrationGoalReached},
		{100, HydrationGoalReached},
		{75, HydrationAlmostThere},
		{50, HydrationOnTrack},
		{25, HydrationKeepDrinking},
		{24.9, HydrationStartHydrating},
		{0, HydrationStartHydrating},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HydrationStatusFor(tt.progress), "progress %v", tt.progress)
	}
}

func TestProgressAndGlasses(t *testing.T) {
	assert.Equal(t, 50.0, Progress(1250, 2500))
	assert.Equal(t, 0.0, Progress(10, 0))
	assert.Equal(t, 3, Glasses(800))
}

func TestHydrationTip(t *testing.T) {
	assert.Equal(t, "Start the day with a glass of water!", HydrationTip(7))
	assert.Equal(t, "Hydration matters at any hour!", HydrationTip(23))
}
