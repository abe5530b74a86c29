package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "DailyRecord"

	RoutingKeyWorkoutCompleted = "tracking.workout.completed"
	RoutingKeyMealLogged       = "tracking.meal.logged"
	RoutingKeyWaterLogged      = "tracking.water.logged"
)

// WorkoutCompleted is emitted for every completed workout.
type WorkoutCompleted struct {
	sharedDomain.BaseEvent
	AccountID      uuid.UUID `json:"account_id"`
	WorkoutID      int       `json:"workout_id"`
	Date           string    `json:"date"`
	CaloriesBurned int       `json:"calories_burned"`
}

func NewWorkoutCompleted(accountID uuid.UUID, e WorkoutEntry, now time.Time) WorkoutCompleted {
	return WorkoutCompleted{
		BaseEvent:      sharedDomain.NewBaseEvent(accountID, AggregateType, RoutingKeyWorkoutCompleted, now),
		AccountID:      accountID,
		WorkoutID:      e.WorkoutID,
		Date:           e.Date,
		CaloriesBurned: e.CaloriesBurned,
	}
}

// MealLogged is emitted for every logged meal.
type MealLogged struct {
	sharedDomain.BaseEvent
	AccountID uuid.UUID `json:"account_id"`
	MealID    uuid.UUID `json:"meal_id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Date      string    `json:"date"`
}

func NewMealLogged(accountID uuid.UUID, e MealEntry, now time.Time) MealLogged {
	return MealLogged{
		BaseEvent: sharedDomain.NewBaseEvent(accountID, AggregateType, RoutingKeyMealLogged, now),
		AccountID: accountID,
		MealID:    e.ID,
		Name:      e.Name,
		Calories:  e.Calories,
		Date:      e.Date,
	}
}

// WaterLogged is emitted for every logged drink.
type WaterLogged struct {
	sharedDomain.BaseEvent
	AccountID uuid.UUID `json:"account_id"`
	Amount    int       `json:"amount"`
	Consumed  int       `json:"consumed"`
	Date      string    `json:"date"`
}

func NewWaterLogged(accountID uuid.UUID, e WaterEntry, consumed int, now time.Time) WaterLogged {
	return WaterLogged{
		BaseEvent: sharedDomain.NewBaseEvent(accountID, AggregateType, RoutingKeyWaterLogged, now),
		AccountID: accountID,
		Amount:    e.Amount,
		Consumed:  consumed,
		Date:      e.Date,
	}
}
