package domain

import onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"

// Defaults used when a profile is missing or a target is zero.
const (
	DefaultDailyCalories  = 2000
	DefaultDailyWater     = 2500
	DefaultWeeklyWorkouts = 3
	DefaultProteinGoal    = 150
	DefaultCarbsGoal      = 200
	DefaultFatsGoal       = 65

	// GlassSize is the water volume of one glass in ml.
	GlassSize = 250
)

// Goals resolves the targets in effect for a profile.
func Goals(p *onboardingDomain.Profile) onboardingDomain.Targets {
	var t onboardingDomain.Targets
	if p != nil {
		t = p.Targets
	}
	return onboardingDomain.Targets{
		DailyCalories:  orDefault(t.DailyCalories, DefaultDailyCalories),
		DailyWater:     orDefault(t.DailyWater, DefaultDailyWater),
		WeeklyWorkouts: orDefault(t.WeeklyWorkouts, DefaultWeeklyWorkouts),
		ProteinGoal:    orDefault(t.ProteinGoal, DefaultProteinGoal),
		CarbsGoal:      orDefault(t.CarbsGoal, DefaultCarbsGoal),
		FatsGoal:       orDefault(t.FatsGoal, DefaultFatsGoal),
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// Progress returns value as a percentage of goal.
func Progress(value, goal int) float64 {
	if goal == 0 {
		return 0
	}
	return float64(value) / float64(goal) * 100
}

// Glasses converts ml to whole glasses.
func Glasses(ml int) int {
	return ml / GlassSize
}

// HydrationStatus is the band a day's water progress falls into.
type HydrationStatus string

const (
	HydrationGoalReached    HydrationStatus = "goal reached"
	HydrationAlmostThere    HydrationStatus = "almost there"
	HydrationOnTrack        HydrationStatus = "on track"
	HydrationKeepDrinking   HydrationStatus = "keep drinking"
	HydrationStartHydrating HydrationStatus = "start hydrating"
)

// HydrationStatusFor maps a progress percentage to its band.
func HydrationStatusFor(progress float64) HydrationStatus {
	switch {
	case progress >= 100:
		return HydrationGoalReached
	case progress >= 75:
		return HydrationAlmostThere
	case progress >= 50:
		return HydrationOnTrack
	case progress >= 25:
		return HydrationKeepDrinking
	default:
		return HydrationStartHydrating
	}
}

// HydrationTip is a suggestion for the hour of day (0-23).
func HydrationTip(hour int) string {
	switch {
	case hour >= 6 && hour < 9:
		return "Start the day with a glass of water!"
	case hour >= 9 && hour < 12:
		return "Stay hydrated through the morning"
	case hour >= 12 && hour < 14:
		return "Drink water before and after lunch"
	case hour >= 14 && hour < 18:
		return "Keep hydrating through the afternoon"
	case hour >= 18 && hour < 21:
		return "Don't forget to drink water in the evening"
	default:
		return "Hydration matters at any hour!"
	}
}
