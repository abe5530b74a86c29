// Package domain models the per-account daily tracking record: workouts,
// meals, hydration and the activity log used for streaks.
package domain

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("daily record not found")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrEmptyMealName  = errors.New("meal name cannot be empty")
	ErrInvalidTime    = errors.New("time must be HH:MM")
)

// ErrConcurrentModification is returned by Save when the stored record moved
// on since it was loaded.
var ErrConcurrentModification = sharedDomain.ErrConcurrentModification

// WorkoutEntry is one completed workout.
type WorkoutEntry struct {
	ID             uuid.UUID `json:"id"`
	WorkoutID      int       `json:"workout_id"`
	Date           string    `json:"date"`
	CaloriesBurned int       `json:"calories_burned"`
}

// WorkoutLog holds the cumulative completed set and the history.
type WorkoutLog struct {
	Completed []int          `json:"completed"`
	History   []WorkoutEntry `json:"history"`
}

// MealEntry is one logged meal.
type MealEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Time     string    `json:"time"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fats     int       `json:"fats"`
	Items    []string  `json:"items"`
	Date     string    `json:"date"`
}

// NutritionLog holds logged meals.
type NutritionLog struct {
	Meals []MealEntry `json:"meals"`
}

// WaterEntry is one logged drink.
type WaterEntry struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
	Time   string    `json:"time"`
	Date   string    `json:"date"`
}

// HydrationLog holds the running counter and the drink log. Consumed is not
// date-scoped; it is cleared by ResetDailyData.
type HydrationLog struct {
	Consumed         int          `json:"consumed"`
	Log              []WaterEntry `json:"log"`
	RemindersEnabled bool         `json:"reminders_enabled"`
}

// ActivityEntry marks a day the app was used.
type ActivityEntry struct {
	Date        string `json:"date"`
	HasActivity bool   `json:"has_activity"`
}

// DailyRecord is the tracking aggregate. There is one per account and it is
// persisted as a single document.
type DailyRecord struct {
	AccountID   uuid.UUID                 `json:"account_id"`
	Profile     *onboardingDomain.Profile `json:"profile"`
	Workouts    WorkoutLog                `json:"workouts"`
	Nutrition   NutritionLog              `json:"nutrition"`
	Hydration   HydrationLog              `json:"hydration"`
	ActivityLog []ActivityEntry           `json:"activity_log"`
	CreatedAt   time.Time                 `json:"created_at"`
	LastAccess  time.Time                 `json:"last_access"`
	Version     int                       `json:"version"`

	events []sharedDomain.DomainEvent
}

// NewDailyRecord builds an empty record with today's activity seeded and
// reminders on.
func NewDailyRecord(accountID uuid.UUID, profile *onboardingDomain.Profile, now time.Time) *DailyRecord {
	now = now.UTC()
	return &DailyRecord{
		AccountID: accountID,
		Profile:   profile,
		Workouts:  WorkoutLog{Completed: []int{}, History: []WorkoutEntry{}},
		Nutrition: NutritionLog{Meals: []MealEntry{}},
		Hydration: HydrationLog{Log: []WaterEntry{}, RemindersEnabled: true},
		ActivityLog: []ActivityEntry{
			{Date: CalendarDate(now), HasActivity: true},
		},
		CreatedAt:  now,
		LastAccess: now,
	}
}

// DomainEvents returns events raised since the last save.
func (r *DailyRecord) DomainEvents() []sharedDomain.DomainEvent {
	return r.events
}

// ClearDomainEvents drops pending events.
func (r *DailyRecord) ClearDomainEvents() {
	r.events = nil
}

// ResetDailyData zeroes the water counter and registers today's activity when
// the last access was on an earlier calendar day. It reports whether a reset
// happened.
func (r *DailyRecord) ResetDailyData(now time.Time) bool {
	if CalendarDate(r.LastAccess) == CalendarDate(now) {
		return false
	}
	r.Hydration.Consumed = 0
	r.RegisterDailyActivity(now)
	return true
}

// RegisterDailyActivity appends today's activity entry unless present.
func (r *DailyRecord) RegisterDailyActivity(now time.Time) bool {
	today := CalendarDate(now)
	for _, e := range r.ActivityLog {
		if e.Date == today {
			return false
		}
	}
	r.ActivityLog = append(r.ActivityLog, ActivityEntry{Date: today, HasActivity: true})
	return true
}

// ConsecutiveStreak counts consecutive active days ending today. It is zero
// when today is not in the log.
func (r *DailyRecord) ConsecutiveStreak(now time.Time) int {
	if len(r.ActivityLog) == 0 {
		return 0
	}

	sorted := slices.Clone(r.ActivityLog)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	day := now.UTC()
	if sorted[0].Date != CalendarDate(day) {
		return 0
	}

	streak := 0
	for _, e := range sorted {
		if e.Date != CalendarDate(day) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// TodayView is the slice of a record that belongs to one calendar day.
type TodayView struct {
	Date          string
	Meals         []MealEntry
	Workouts      []WorkoutEntry
	WaterLog      []WaterEntry
	WaterConsumed int
}

// Today filters the record by today's date. The water counter is reported
// only when the first drink ever logged is dated today.
func (r *DailyRecord) Today(now time.Time) TodayView {
	today := CalendarDate(now)
	v := TodayView{
		Date:     today,
		Meals:    []MealEntry{},
		Workouts: []WorkoutEntry{},
		WaterLog: []WaterEntry{},
	}
	for _, m := range r.Nutrition.Meals {
		if m.Date == today {
			v.Meals = append(v.Meals, m)
		}
	}
	for _, w := range r.Workouts.History {
		if w.Date == today {
			v.Workouts = append(v.Workouts, w)
		}
	}
	for _, l := range r.Hydration.Log {
		if l.Date == today {
			v.WaterLog = append(v.WaterLog, l)
		}
	}
	if len(r.Hydration.Log) > 0 && r.Hydration.Log[0].Date == today {
		v.WaterConsumed = r.Hydration.Consumed
	}
	return v
}

// AddWater increments the counter and logs the drink.
func (r *DailyRecord) AddWater(amount int, now time.Time) (WaterEntry, error) {
	if amount <= 0 {
		return WaterEntry{}, fmt.Errorf("%w: %d ml", ErrInvalidAmount, amount)
	}
	entry := WaterEntry{
		ID:     uuid.New(),
		Amount: amount,
		Time:   clockTime(now),
		Date:   CalendarDate(now),
	}
	r.Hydration.Consumed += amount
	r.Hydration.Log = append(r.Hydration.Log, entry)
	r.events = append(r.events, NewWaterLogged(r.AccountID, entry, r.Hydration.Consumed, now))
	return entry, nil
}

// RemoveWater decrements the counter, never below zero. The log is kept.
func (r *DailyRecord) RemoveWater(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d ml", ErrInvalidAmount, amount)
	}
	r.Hydration.Consumed = max(0, r.Hydration.Consumed-amount)
	return nil
}

// ToggleReminders flips the reminders flag and returns the new value.
func (r *DailyRecord) ToggleReminders() bool {
	r.Hydration.RemindersEnabled = !r.Hydration.RemindersEnabled
	return r.Hydration.RemindersEnabled
}

// MealInput is a meal to log.
type MealInput struct {
	Name     string
	Time     string
	Calories int
	Protein  int
	Carbs    int
	Fats     int
	Items    []string
}

// AddMeal logs a meal dated today. An empty time defaults to now; any other
// time must be HH:MM.
func (r *DailyRecord) AddMeal(in MealInput, now time.Time) (MealEntry, error) {
	if in.Name == "" {
		return MealEntry{}, ErrEmptyMealName
	}
	if in.Time == "" {
		in.Time = clockTime(now)
	} else if !validClockTime(in.Time) {
		return MealEntry{}, fmt.Errorf("%q: %w", in.Time, ErrInvalidTime)
	}
	items := in.Items
	if items == nil {
		items = []string{}
	}
	entry := MealEntry{
		ID:       uuid.New(),
		Name:     in.Name,
		Time:     in.Time,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Items:    items,
		Date:     CalendarDate(now),
	}
	r.Nutrition.Meals = append(r.Nutrition.Meals, entry)
	r.events = append(r.events, NewMealLogged(r.AccountID, entry, now))
	return entry, nil
}

// DeleteMeal removes a logged meal.
func (r *DailyRecord) DeleteMeal(id uuid.UUID) error {
	i := slices.IndexFunc(r.Nutrition.Meals, func(m MealEntry) bool { return m.ID == id })
	if i < 0 {
		return fmt.Errorf("meal %s: %w", id, ErrEntryNotFound)
	}
	r.Nutrition.Meals = slices.Delete(r.Nutrition.Meals, i, i+1)
	return nil
}

// CompleteWorkout marks w as done and appends today's history entry.
func (r *DailyRecord) CompleteWorkout(w Workout, now time.Time) WorkoutEntry {
	if !slices.Contains(r.Workouts.Completed, w.ID) {
		r.Workouts.Completed = append(r.Workouts.Completed, w.ID)
	}
	entry := WorkoutEntry{
		ID:             uuid.New(),
		WorkoutID:      w.ID,
		Date:           CalendarDate(now),
		CaloriesBurned: w.Calories,
	}
	r.Workouts.History = append(r.Workouts.History, entry)
	r.events = append(r.events, NewWorkoutCompleted(r.AccountID, entry, now))
	return entry
}

// WorkoutLocation is where the account trains; unset profiles see everything.
func (r *DailyRecord) WorkoutLocation() onboardingDomain.WorkoutLocation {
	if r.Profile == nil || r.Profile.WorkoutLocation == "" {
		return onboardingDomain.LocationBoth
	}
	return r.Profile.WorkoutLocation
}
