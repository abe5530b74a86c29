package commands

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/fitsmart/internal/meals/domain"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	trackingCommands "github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	trackingDomain "github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSuggestionHandler(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := sharedDomain.FixedClock(now)
	repo := persistence.NewKVDailyRecordRepository(kvstore.NewMemoryStore(), clock, nil)

	record := trackingDomain.NewDailyRecord(uuid.New(), nil, now)
	require.NoError(t, repo.Save(ctx, record))

	bus := eventbus.NewInProcessBus(nil)
	var logged []string
	bus.Subscribe(trackingDomain.RoutingKeyMealLogged, func(_ context.Context, env eventbus.Envelope) error {
		logged = append(logged, env.RoutingKey)
		return nil
	})

	addMeal := trackingCommands.NewAddMealHandler(trackingCommands.Deps{
		Records:   repo,
		UoW:       sharedApplication.NopUnitOfWork{},
		Publisher: bus,
		Clock:     clock,
	})
	handler := NewLogSuggestionHandler(addMeal)

	entry, err := handler.Handle(ctx, LogSuggestionCommand{AccountID: record.AccountID, SuggestionID: "lunch-4", Time: "12:15"})
	require.NoError(t, err)
	assert.Equal(t, "Brown Rice with Lentils and Vegetables", entry.Name)
	assert.Equal(t, 480, entry.Calories)
	assert.Equal(t, "12:15", entry.Time)
	assert.Len(t, entry.Items, 5)
	assert.Equal(t, []string{trackingDomain.RoutingKeyMealLogged}, logged)

	_, err = handler.Handle(ctx, LogSuggestionCommand{AccountID: record.AccountID, SuggestionID: "lunch-9"})
	assert.ErrorIs(t, err, domain.ErrSuggestionNotFound)
}
