package domain

import "math"

type activityFactor struct {
	multiplier     float64
	weeklyWorkouts int
}

var activityFactors = map[ActivityLevel]activityFactor{
	ActivitySedentary:  {1.2, 2},
	ActivityLight:      {1.375, 3},
	ActivityModerate:   {1.55, 4},
	ActivityActive:     {1.725, 5},
	ActivityVeryActive: {1.9, 6},
}

var defaultActivityFactor = activityFactor{1.2, 3}

const goalCalorieDelta = 500

// BMR is the Harris-Benedict basal metabolic rate. Anything other than male
// uses the female formula.
func BMR(gender Gender, weight, height, age float64) float64 {
	if gender == GenderMale {
		return 88.362 + 13.397*weight + 4.799*height - 5.677*age
	}
	return 447.593 + 9.247*weight + 3.098*height - 4.330*age
}

// ComputeTargets derives calorie, water, workout and macro goals. Inputs are
// not clamped; nonsensical measurements give nonsensical targets.
func ComputeTargets(p Profile) Targets {
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = defaultActivityFactor
	}

	calories := BMR(p.Gender, p.Weight, p.Height, p.Age) * factor.multiplier
	switch p.Goal {
	case GoalLose:
		calories -= goalCalorieDelta
	case GoalGain:
		calories += goalCalorieDelta
	}
	dailyCalories := round(calories)

	return Targets{
		DailyCalories:  dailyCalories,
		DailyWater:     round(p.Weight * 35),
		WeeklyWorkouts: factor.weeklyWorkouts,
		ProteinGoal:    round(p.Weight * 2),
		CarbsGoal:      round(float64(dailyCalories) * 0.40 / 4),
		FatsGoal:       round(float64(dailyCalories) * 0.30 / 9),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
