package commands

import (
	"context"
	"testing"
	"time"

	identityDomain "github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	identityPersistence "github.com/felixgeelhaar/fitsmart/internal/identity/infrastructure/persistence"
	"github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	trackingPersistence "github.com/felixgeelhaar/fitsmart/internal/tracking/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func validAnswers() domain.QuizAnswers {
	return domain.QuizAnswers{
		Age:                 "25",
		Weight:              "70",
		Height:              "170",
		Gender:              "male",
		Goal:                "maintain",
		ActivityLevel:       "moderate",
		WorkoutLocation:     "gym",
		DietaryRestrictions: []string{"none"},
		Allergies:           []string{"none"},
		MealsPerDay:         "4",
	}
}

type quizFixture struct {
	accounts *identityPersistence.KVAccountRepository
	records  *trackingPersistence.KVDailyRecordRepository
	bus      *eventbus.InProcessBus
	handler  *CompleteQuizHandler
	account  *identityDomain.Account
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	clock := sharedDomain.FixedClock(testNow)
	f := &quizFixture{
		accounts: identityPersistence.NewKVAccountRepository(store, nil),
		records:  trackingPersistence.NewKVDailyRecordRepository(store, clock, nil),
		bus:      eventbus.NewInProcessBus(nil),
	}
	f.handler = NewCompleteQuizHandler(f.accounts, f.records, sharedApplication.NopUnitOfWork{}, f.bus, clock, nil)

	email, err := identityDomain.NewEmail("ana@example.com")
	require.NoError(t, err)
	name, err := identityDomain.NewName("Ana Souza")
	require.NoError(t, err)
	f.account = identityDomain.NewAccount(email, name, testNow)
	require.NoError(t, f.accounts.Save(context.Background(), f.account))
	return f
}

func TestCompleteQuizHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the profile and unlocks the app", func(t *testing.T) {
		f := newQuizFixture(t)
		var keys []string
		f.bus.Subscribe(eventbus.MatchAll, func(_ context.Context, env eventbus.Envelope) error {
			keys = append(keys, env.RoutingKey)
			return nil
		})

		result, err := f.handler.Handle(ctx, CompleteQuizCommand{AccountID: f.account.ID(), Answers: validAnswers()})
		require.NoError(t, err)
		assert.Equal(t, 2635, result.Profile.DailyCalories)
		assert.Equal(t, 2450, result.Profile.DailyWater)
		assert.Equal(t, 4, result.Profile.WeeklyWorkouts)
		assert.Equal(t, "Ana", result.Profile.Name)

		stored, err := f.accounts.FindByID(ctx, f.account.ID())
		require.NoError(t, err)
		assert.True(t, stored.HasCompletedQuiz())
		assert.True(t, stored.CanAccessApp(testNow))

		record, err := f.records.Load(ctx, f.account.ID())
		require.NoError(t, err)
		require.NotNil(t, record)
		require.NotNil(t, record.Profile)
		assert.Equal(t, 140, record.Profile.ProteinGoal)
		assert.True(t, record.Hydration.RemindersEnabled)
		assert.Equal(t, 1, record.Version)

		assert.Equal(t, []string{identityDomain.RoutingKeyQuizCompleted}, keys)
	})

	t.Run("rejects a second attempt", func(t *testing.T) {
		f := newQuizFixture(t)
		_, err := f.handler.Handle(ctx, CompleteQuizCommand{AccountID: f.account.ID(), Answers: validAnswers()})
		require.NoError(t, err)

		_, err = f.handler.Handle(ctx, CompleteQuizCommand{AccountID: f.account.ID(), Answers: validAnswers()})
		assert.ErrorIs(t, err, ErrQuizAlreadyCompleted)
	})

	t.Run("rejects invalid answers before touching the store", func(t *testing.T) {
		f := newQuizFixture(t)
		answers := validAnswers()
		answers.Weight = "seventy"

		_, err := f.handler.Handle(ctx, CompleteQuizCommand{AccountID: f.account.ID(), Answers: answers})
		assert.ErrorIs(t, err, domain.ErrInvalidAnswers)

		stored, err := f.accounts.FindByID(ctx, f.account.ID())
		require.NoError(t, err)
		assert.False(t, stored.HasCompletedQuiz())
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newQuizFixture(t)
		_, err := f.handler.Handle(ctx, CompleteQuizCommand{AccountID: uuid.New(), Answers: validAnswers()})
		assert.ErrorIs(t, err, identityDomain.ErrAccountNotFound)
	})
}
