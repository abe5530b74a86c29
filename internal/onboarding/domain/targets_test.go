package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTargets(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    Targets
	}{
		{
			name: "moderate male maintaining",
			profile: Profile{
				Weight: 70, Height: 170, Age: 25,
				Gender: GenderMale, ActivityLevel: ActivityModerate, Goal: GoalMaintain,
			},
			want: Targets{DailyCalories: 2635, DailyWater: 2450, WeeklyWorkouts: 4, ProteinGoal: 140, CarbsGoal: 264, FatsGoal: 88},
		},
		{
			name: "sedentary female losing",
			profile: Profile{
				Weight: 60, Height: 165, Age: 30,
				Gender: GenderFemale, ActivityLevel: ActivitySedentary, Goal: GoalLose,
			},
			// BMR 1383.683, x1.2 = 1660.42, -500
			want: Targets{DailyCalories: 1160, DailyWater: 2100, WeeklyWorkouts: 2, ProteinGoal: 120, CarbsGoal: 116, FatsGoal: 39},
		},
		{
			name: "very active male gaining",
			profile: Profile{
				Weight: 80, Height: 180, Age: 20,
				Gender: GenderMale, ActivityLevel: ActivityVeryActive, Goal: GoalGain,
			},
			// BMR 1910.402, x1.9 = 3629.76, +500
			want: Targets{DailyCalories: 4130, DailyWater: 2800, WeeklyWorkouts: 6, ProteinGoal: 160, CarbsGoal: 413, FatsGoal: 138},
		},
		{
			name: "unrecognized activity level",
			profile: Profile{
				Weight: 70, Height: 170, Age: 25,
				Gender: GenderMale, ActivityLevel: "couch", Goal: GoalTone,
			},
			// BMR 1700.057, x1.2
			want: Targets{DailyCalories: 2040, DailyWater: 2450, WeeklyWorkouts: 3, ProteinGoal: 140, CarbsGoal: 204, FatsGoal: 68},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTargets(tt.profile))
		})
	}
}

func TestComputeTargets_NoClamping(t *testing.T) {
	got := ComputeTargets(Profile{Weight: -10, Height: 0, Age: 0, Gender: GenderMale, ActivityLevel: ActivityLight})
	assert.Equal(t, -350, got.DailyWater)
	assert.Equal(t, -20, got.ProteinGoal)
	assert.Less(t, got.DailyCalories, 0)
}

func TestBMR_NonMaleUsesFemaleFormula(t *testing.T) {
	assert.Equal(t, BMR(GenderFemale, 60, 165, 30), BMR("", 60, 165, 30))
	assert.InDelta(t, 1700.057, BMR(GenderMale, 70, 170, 25), 1e-6)
}
