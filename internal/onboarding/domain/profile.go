// Package domain holds the onboarding questionnaire and the targets derived
// from it.
package domain

// Gender selects the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Goal adjusts the calorie target.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
	GoalTone     Goal = "tone"
)

// ActivityLevel drives the activity multiplier and the weekly workout target.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// WorkoutLocation filters the workout catalog.
type WorkoutLocation string

const (
	LocationHome WorkoutLocation = "home"
	LocationGym  WorkoutLocation = "gym"
	LocationBoth WorkoutLocation = "both"
)

// Includes reports whether a workout performed at l is offered to someone
// training at wl.
func (wl WorkoutLocation) Includes(l WorkoutLocation) bool {
	return wl == LocationBoth || wl == "" || wl == l
}

// Restriction is a dietary restriction.
type Restriction string

const (
	RestrictionLactoseIntolerance Restriction = "lactose_intolerance"
	RestrictionGlutenIntolerance  Restriction = "gluten_intolerance"
	RestrictionCeliac             Restriction = "celiac"
	RestrictionVegetarian         Restriction = "vegetarian"
	RestrictionVegan              Restriction = "vegan"
	RestrictionDiabetes           Restriction = "diabetes"
	RestrictionHypertension       Restriction = "hypertension"
	RestrictionHighCholesterol    Restriction = "high_cholesterol"
	RestrictionNone               Restriction = "none"
)

// Allergy is a food allergy.
type Allergy string

const (
	AllergyPeanut    Allergy = "peanut"
	AllergyShellfish Allergy = "shellfish"
	AllergyEggs      Allergy = "eggs"
	AllergySoy       Allergy = "soy"
	AllergyTreeNuts  Allergy = "tree_nuts"
	AllergyFish      Allergy = "fish"
	AllergyDairy     Allergy = "dairy"
	AllergyWheat     Allergy = "wheat"
	AllergyNone      Allergy = "none"
)

// Targets are the daily and weekly goals derived from a profile.
type Targets struct {
	DailyCalories  int `json:"daily_calories"`
	DailyWater     int `json:"daily_water"`
	WeeklyWorkouts int `json:"weekly_workouts"`
	ProteinGoal    int `json:"protein_goal"`
	CarbsGoal      int `json:"carbs_goal"`
	FatsGoal       int `json:"fats_goal"`
}

// Profile is what the questionnaire captured plus the derived targets. It is
// written once, when the quiz completes.
type Profile struct {
	Name                string          `json:"name,omitempty"`
	Age                 float64         `json:"age"`
	Weight              float64         `json:"weight"`
	Height              float64         `json:"height"`
	Gender              Gender          `json:"gender"`
	Goal                Goal            `json:"goal"`
	ActivityLevel       ActivityLevel   `json:"activity_level"`
	WorkoutLocation     WorkoutLocation `json:"workout_location"`
	DietaryRestrictions []Restriction   `json:"dietary_restrictions"`
	Allergies           []Allergy       `json:"allergies"`
	MealsPerDay         int             `json:"meals_per_day,omitempty"`
	PreferredMealTimes  []string        `json:"preferred_meal_times,omitempty"`
	Targets
}

// HasRestriction reports whether r was selected.
func (p Profile) HasRestriction(r Restriction) bool {
	for _, x := range p.DietaryRestrictions {
		if x == r {
			return true
		}
	}
	return false
}

// HasAllergy reports whether a was selected.
func (p Profile) HasAllergy(a Allergy) bool {
	for _, x := range p.Allergies {
		if x == a {
			return true
		}
	}
	return false
}
