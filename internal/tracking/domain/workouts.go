package domain

import onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"

// Exercise is one movement of a workout.
type Exercise struct {
	Name     string
	Sets     int
	Reps     string
	VideoURL string
}

// Workout is a static catalog entry.
type Workout struct {
	ID        int
	Name      string
	Location  onboardingDomain.WorkoutLocation
	Duration  int // minutes
	Calories  int
	Level     string
	Exercises []Exercise
}

var workoutCatalog = []Workout{
	{
		ID: 1, Name: "Chest & Triceps", Location: onboardingDomain.LocationGym, Duration: 45, Calories: 350, Level: "intermediate",
		Exercises: []Exercise{
			{"Flat bench press", 4, "10-12", "https://www.youtube.com/embed/rT7DgCr-3pg"},
			{"Incline bench press", 3, "10-12", "https://www.youtube.com/embed/SrqOu55lrYU"},
			{"Dumbbell fly", 3, "12-15", "https://www.youtube.com/embed/eozdVDA78K0"},
			{"Skull crushers", 3, "10-12", "https://www.youtube.com/embed/d_KZxkY_0cM"},
			{"Rope pushdown", 3, "12-15", "https://www.youtube.com/embed/2-LAMcpzODU"},
		},
	},
	{
		ID: 2, Name: "Back & Biceps", Location: onboardingDomain.LocationGym, Duration: 50, Calories: 380, Level: "intermediate",
		Exercises: []Exercise{
			{"Pull-ups", 4, "8-10", "https://www.youtube.com/embed/eGo4IYlbE5g"},
			{"Bent-over row", 4, "10-12", "https://www.youtube.com/embed/FWJR5Ve8bnQ"},
			{"Lat pulldown", 3, "10-12", "https://www.youtube.com/embed/CAwf7n6Luuc"},
			{"Barbell curl", 3, "10-12", "https://www.youtube.com/embed/ykJmrZ5v0Oo"},
			{"Hammer curl", 3, "12-15", "https://www.youtube.com/embed/zC3nLlEvin4"},
		},
	},
	{
		ID: 3, Name: "Legs", Location: onboardingDomain.LocationGym, Duration: 55, Calories: 420, Level: "intermediate",
		Exercises: []Exercise{
			{"Back squat", 4, "10-12", "https://www.youtube.com/embed/ultWZbUMPL8"},
			{"Leg press", 4, "12-15", "https://www.youtube.com/embed/IZxyjW7MPJQ"},
			{"Leg extension", 3, "12-15", "https://www.youtube.com/embed/YyvSfVjQeL0"},
			{"Lying leg curl", 3, "12-15", "https://www.youtube.com/embed/1Tq3QdYUuHs"},
			{"Standing calf raise", 4, "15-20", "https://www.youtube.com/embed/JbyjNymZOt0"},
		},
	},
	{
		ID: 4, Name: "Shoulders", Location: onboardingDomain.LocationGym, Duration: 40, Calories: 320, Level: "intermediate",
		Exercises: []Exercise{
			{"Barbell overhead press", 4, "10-12", "https://www.youtube.com/embed/2yjwXTZQDDI"},
			{"Lateral raise", 3, "12-15", "https://www.youtube.com/embed/3VcKaXpzqRo"},
			{"Front raise", 3, "12-15", "https://www.youtube.com/embed/qsl6Joq0h_0"},
			{"Reverse fly", 3, "12-15", "https://www.youtube.com/embed/T7gWBKwzUVM"},
			{"Shrugs", 3, "15-20", "https://www.youtube.com/embed/cJRVVxmytaM"},
		},
	},
	{
		ID: 5, Name: "Full Body at Home", Location: onboardingDomain.LocationHome, Duration: 35, Calories: 280, Level: "beginner",
		Exercises: []Exercise{
			{"Push-ups", 4, "12-15", "https://www.youtube.com/embed/IODxDxX7oi4"},
			{"Bodyweight squat", 4, "15-20", "https://www.youtube.com/embed/aclHkVaku9U"},
			{"Plank", 3, "30-60s", "https://www.youtube.com/embed/ASdvN_XEl_c"},
			{"Lunges", 3, "12-15", "https://www.youtube.com/embed/QOVaHwm-Q6U"},
			{"Burpee", 3, "10-12", "https://www.youtube.com/embed/TU8QYVW0gDU"},
		},
	},
	{
		ID: 6, Name: "HIIT at Home", Location: onboardingDomain.LocationHome, Duration: 25, Calories: 300, Level: "advanced",
		Exercises: []Exercise{
			{"Jumping jacks", 4, "30s", "https://www.youtube.com/embed/2W4ZNSwoW_4"},
			{"Mountain climbers", 4, "30s", "https://www.youtube.com/embed/nmwgirgXLYM"},
			{"Burpees", 4, "30s", "https://www.youtube.com/embed/TU8QYVW0gDU"},
			{"High knees", 4, "30s", "https://www.youtube.com/embed/8opcQdC-V-U"},
			{"Jump squats", 4, "30s", "https://www.youtube.com/embed/A-cFYWvaHr0"},
		},
	},
}

// Workouts returns the catalog entries offered at location. An empty
// location or "both" returns everything.
func Workouts(location onboardingDomain.WorkoutLocation) []Workout {
	out := make([]Workout, 0, len(workoutCatalog))
	for _, w := range workoutCatalog {
		if location.Includes(w.Location) {
			out = append(out, w)
		}
	}
	return out
}

// WorkoutByID looks a workout up in the catalog.
func WorkoutByID(id int) (Workout, bool) {
	for _, w := range workoutCatalog {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}
