package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	billingDomain "github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	"github.com/felixgeelhaar/fitsmart/internal/identity/infrastructure/persistence"
	sharedApplication "github.com/felixgeelhaar/fitsmart/internal/shared/application"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

// plainHasher stands in for bcrypt so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Check(p, h string) bool        { return h == "hashed:"+p }

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() error { return nil }

type fixture struct {
	store       *kvstore.MemoryStore
	accounts    *persistence.KVAccountRepository
	credentials *persistence.KVCredentialRepository
	sessions    *persistence.KVSessionStore
	publisher   *mockPublisher
	register    *RegisterHandler
	login       *LoginHandler
	logout      *LogoutHandler
}

func newFixture() *fixture {
	store := kvstore.NewMemoryStore()
	f := &fixture{
		store:       store,
		accounts:    persistence.NewKVAccountRepository(store, nil),
		credentials: persistence.NewKVCredentialRepository(store),
		sessions:    persistence.NewKVSessionStore(store, nil),
		publisher:   new(mockPublisher),
	}
	f.register = NewRegisterHandler(f.accounts, f.credentials, plainHasher{}, sharedApplication.NopUnitOfWork{},
		f.publisher, sharedDomain.FixedClock(testNow), nil)
	f.login = NewLoginHandler(f.accounts, f.credentials, f.sessions, plainHasher{}, nil)
	f.logout = NewLogoutHandler(f.sessions)
	return f
}

func TestRegisterHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a trial account without a session", func(t *testing.T) {
		f := newFixture()
		f.publisher.On("Publish", mock.Anything, domain.RoutingKeyAccountRegistered, mock.Anything).Return(nil)

		account, err := f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "secret", Name: "Ana"})
		require.NoError(t, err)

		sub := account.Subscription()
		assert.Equal(t, billingDomain.PlanFree, sub.Plan)
		assert.Equal(t, billingDomain.StatusTrial, sub.Status)
		assert.True(t, sub.ExpiryDate.Equal(testNow.Add(72*time.Hour)))
		require.NotNil(t, sub.TrialEndsAt)
		assert.True(t, sub.TrialEndsAt.Equal(sub.ExpiryDate))
		assert.Empty(t, account.DomainEvents())

		hash, err := f.credentials.Find(ctx, account.ID())
		require.NoError(t, err)
		assert.Equal(t, "hashed:secret", hash)

		_, ok, err := f.sessions.Current(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		f.publisher.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newFixture()
		f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "secret", Name: "Ana"})
		require.NoError(t, err)
		_, err = f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "other1", Name: "Ana 2"})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

		accounts, err := f.accounts.List(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
	})

	t.Run("treats differently cased emails as distinct", func(t *testing.T) {
		f := newFixture()
		f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "secret", Name: "Ana"})
		require.NoError(t, err)
		_, err = f.register.Handle(ctx, RegisterCommand{Email: "ANA@example.com", Password: "secret", Name: "Ana"})
		require.NoError(t, err)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		f := newFixture()
		_, err := f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "12345", Name: "Ana"})
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("rejects invalid email and empty name", func(t *testing.T) {
		f := newFixture()
		_, err := f.register.Handle(ctx, RegisterCommand{Email: "nope", Password: "secret", Name: "Ana"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		_, err = f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "secret", Name: "  "})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("a publish failure does not undo registration", func(t *testing.T) {
		f := newFixture()
		f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

		account, err := f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "secret", Name: "Ana"})
		require.NoError(t, err)

		stored, err := f.accounts.FindByID(ctx, account.ID())
		require.NoError(t, err)
		assert.NotNil(t, stored)
	})
}

func TestLoginAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	registered, err := f.register.Handle(ctx, RegisterCommand{Email: "ana@example.com", Password: "secret", Name: "Ana"})
	require.NoError(t, err)

	_, err = f.login.Handle(ctx, LoginCommand{Email: "ana@example.com", Password: "wrong!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.login.Handle(ctx, LoginCommand{Email: "bob@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.login.Handle(ctx, LoginCommand{Email: "Ana@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	account, err := f.login.Handle(ctx, LoginCommand{Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID(), account.ID())

	id, ok, err := f.sessions.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, registered.ID(), id)

	require.NoError(t, f.logout.Handle(ctx))
	_, ok, err = f.sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.logout.Handle(ctx))
}
