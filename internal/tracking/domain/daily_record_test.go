package domain

import (
	"testing"
	"time"

	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func newRecord() *DailyRecord {
	return NewDailyRecord(uuid.New(), &onboardingDomain.Profile{WorkoutLocation: onboardingDomain.LocationHome}, today)
}

func TestNewDailyRecord(t *testing.T) {
	r := newRecord()

	assert.Equal(t, []ActivityEntry{{Date: "2024-03-10", HasActivity: true}}, r.ActivityLog)
	assert.True(t, r.Hydration.RemindersEnabled)
	assert.Zero(t, r.Hydration.Consumed)
	assert.True(t, r.CreatedAt.Equal(today))
	assert.True(t, r.LastAccess.Equal(today))
	assert.Empty(t, r.Workouts.Completed)
	assert.Equal(t, 0, r.Version)
}

func TestCalendarDate_UsesUTC(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	late := time.Date(2024, 3, 10, 22, 0, 0, 0, saoPaulo)
	assert.Equal(t, "2024-03-11", CalendarDate(late))
}

func TestRegisterDailyActivity_Idempotent(t *testing.T) {
	r := newRecord()

	assert.False(t, r.RegisterDailyActivity(today))
	assert.False(t, r.RegisterDailyActivity(today.Add(time.Hour)))
	assert.Len(t, r.ActivityLog, 1)

	assert.True(t, r.RegisterDailyActivity(today.AddDate(0, 0, 1)))
	assert.Len(t, r.ActivityLog, 2)
}

func TestResetDailyData(t *testing.T) {
	t.Run("last access yesterday resets water and registers today", func(t *testing.T) {
		r := newRecord()
		r.Hydration.Consumed = 1500
		r.LastAccess = today.AddDate(0, 0, -1)
		r.ActivityLog = []ActivityEntry{{Date: "2024-03-09", HasActivity: true}}

		assert.True(t, r.ResetDailyData(today))
		assert.Zero(t, r.Hydration.Consumed)
		assert.Equal(t, "2024-03-10", r.ActivityLog[len(r.ActivityLog)-1].Date)
		assert.Len(t, r.ActivityLog, 2)
	})

	t.Run("last access today keeps everything", func(t *testing.T) {
		r := newRecord()
		r.Hydration.Consumed = 1500
		r.LastAccess = today.Add(-2 * time.Hour)

		assert.False(t, r.ResetDailyData(today))
		assert.Equal(t, 1500, r.Hydration.Consumed)
		assert.Len(t, r.ActivityLog, 1)
	})
}

func TestConsecutiveStreak(t *testing.T) {
	tests := []struct {
		name string
		log  []string
		want int
	}{
		{"three consecutive days", []string{"2024-03-08", "2024-03-09", "2024-03-10"}, 3},
		{"unordered consecutive days", []string{"2024-03-10", "2024-03-08", "2024-03-09"}, 3},
		{"gap before today", []string{"2024-03-07", "2024-03-08", "2024-03-10"}, 1},
		{"not active today", []string{"2024-03-08", "2024-03-09"}, 0},
		{"empty log", nil, 0},
		{"across a month boundary", []string{"2024-02-28", "2024-02-29", "2024-03-01"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord()
			r.ActivityLog = nil
			for _, d := range tt.log {
				r.ActivityLog = append(r.ActivityLog, ActivityEntry{Date: d, HasActivity: true})
			}
			assert.Equal(t, tt.want, r.ConsecutiveStreak(today))
		})
	}

	r := newRecord()
	r.ActivityLog = []ActivityEntry{{Date: "2024-02-28"}, {Date: "2024-02-29"}, {Date: "2024-03-01"}}
	assert.Equal(t, 3, r.ConsecutiveStreak(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
}

func TestHydration(t *testing.T) {
	r := newRecord()

	_, err := r.AddWater(0, today)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	entry, err := r.AddWater(250, today)
	require.NoError(t, err)
	assert.Equal(t, "14:30", entry.Time)
	assert.Equal(t, "2024-03-10", entry.Date)

	_, err = r.AddWater(500, today)
	require.NoError(t, err)
	assert.Equal(t, 750, r.Hydration.Consumed)
	assert.Len(t, r.DomainEvents(), 2)
	assert.Equal(t, RoutingKeyWaterLogged, r.DomainEvents()[0].RoutingKey())

	require.NoError(t, r.RemoveWater(250))
	assert.Equal(t, 500, r.Hydration.Consumed)
	assert.Len(t, r.Hydration.Log, 2)

	require.NoError(t, r.RemoveWater(5000))
	assert.Zero(t, r.Hydration.Consumed)

	assert.False(t, r.ToggleReminders())
	assert.True(t, r.ToggleReminders())
}

func TestToday_FirstEntrySemantics(t *testing.T) {
	r := newRecord()
	yesterday := today.AddDate(0, 0, -1)

	_, err := r.AddWater(250, yesterday)
	require.NoError(t, err)
	_, err = r.AddWater(500, today)
	require.NoError(t, err)

	view := r.Today(today)
	assert.Len(t, view.WaterLog, 1)
	assert.Zero(t, view.WaterConsumed)

	fresh := newRecord()
	_, err = fresh.AddWater(500, today)
	require.NoError(t, err)
	assert.Equal(t, 500, fresh.Today(today).WaterConsumed)
}

func TestAddMeal_RejectsMalformedTime(t *testing.T) {
	r := newRecord()

	for _, tm := range []string{"8:00", "24:00", "12:60", "noon", "12:00:00", "12h30"} {
		t.Run(tm, func(t *testing.T) {
			_, err := r.AddMeal(MealInput{Name: "Oatmeal", Time: tm}, today)
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}
	assert.Empty(t, r.Nutrition.Meals)

	entry, err := r.AddMeal(MealInput{Name: "Oatmeal", Time: "00:05"}, today)
	require.NoError(t, err)
	assert.Equal(t, "00:05", entry.Time)
}

func TestMeals(t *testing.T) {
	r := newRecord()

	_, err := r.AddMeal(MealInput{}, today)
	assert.ErrorIs(t, err, ErrEmptyMealName)

	breakfast, err := r.AddMeal(MealInput{Name: "Oatmeal", Time: "08:00", Calories: 350, Protein: 12}, today)
	require.NoError(t, err)
	old, err := r.AddMeal(MealInput{Name: "Pizza", Calories: 800}, today.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, "14:30", old.Time)
	assert.Equal(t, []string{}, old.Items)

	view := r.Today(today)
	require.Len(t, view.Meals, 1)
	assert.Equal(t, breakfast.ID, view.Meals[0].ID)

	require.NoError(t, r.DeleteMeal(breakfast.ID))
	assert.Empty(t, r.Today(today).Meals)
	assert.ErrorIs(t, r.DeleteMeal(breakfast.ID), ErrEntryNotFound)
}

func TestCompleteWorkout(t *testing.T) {
	r := newRecord()
	hiit, ok := WorkoutByID(6)
	require.True(t, ok)

	r.CompleteWorkout(hiit, today)
	r.CompleteWorkout(hiit, today)

	assert.Equal(t, []int{6}, r.Workouts.Completed)
	assert.Len(t, r.Workouts.History, 2)
	view := r.Today(today)
	require.Len(t, view.Workouts, 2)
	assert.Equal(t, 300, view.Workouts[0].CaloriesBurned)
	assert.Equal(t, RoutingKeyWorkoutCompleted, r.DomainEvents()[0].RoutingKey())

	r.ClearDomainEvents()
	assert.Empty(t, r.DomainEvents())
}

func TestWorkouts(t *testing.T) {
	assert.Len(t, Workouts(onboardingDomain.LocationBoth), 6)
	assert.Len(t, Workouts(""), 6)

	home := Workouts(onboardingDomain.LocationHome)
	require.Len(t, home, 2)
	assert.Equal(t, 5, home[0].ID)

	gym := Workouts(onboardingDomain.LocationGym)
	require.Len(t, gym, 4)
	for _, w := range gym {
		assert.NotEmpty(t, w.Exercises)
	}

	_, ok := WorkoutByID(99)
	assert.False(t, ok)

	assert.Equal(t, onboardingDomain.LocationHome, newRecord().WorkoutLocation())
	assert.Equal(t, onboardingDomain.LocationBoth, NewDailyRecord(uuid.New(), nil, today).WorkoutLocation())
}
