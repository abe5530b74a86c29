package persistence

import (
	"context"
	"testing"
	"time"

	billingDomain "github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	sharedDomain "github.com/felixgeelhaar/fitsmart/internal/shared/domain"
	"github.com/felixgeelhaar/fitsmart/internal/shared/infrastructure/kvstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestAccount(t *testing.T, email string) *domain.Account {
	t.Helper()
	e, err := domain.NewEmail(email)
	require.NoError(t, err)
	n, err := domain.NewName("Ana Souza")
	require.NoError(t, err)
	return domain.NewAccount(e, n, testNow)
}

func TestKVAccountRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewKVAccountRepository(store, nil)

	account := newTestAccount(t, "ana@example.com")
	require.NoError(t, repo.Save(ctx, account))
	assert.Equal(t, 1, account.Version())

	found, err := repo.FindByID(ctx, account.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, account.Email().String(), found.Email().String())
	assert.Equal(t, "Ana Souza", found.Name().String())
	assert.Equal(t, billingDomain.StatusTrial, found.Subscription().Status)
	assert.Equal(t, 1, found.Version())
	assert.True(t, found.CreatedAt().Equal(testNow))

	byEmail, err := repo.FindByEmail(ctx, account.Email())
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, account.ID(), byEmail.ID())
}

func TestKVAccountRepository_EmailMatchIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewKVAccountRepository(kvstore.NewMemoryStore(), nil)
	require.NoError(t, repo.Save(ctx, newTestAccount(t, "ana@example.com")))

	upper, err := domain.NewEmail("Ana@example.com")
	require.NoError(t, err)
	found, err := repo.FindByEmail(ctx, upper)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestKVAccountRepository_IndexTracksNewAccountsOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewKVAccountRepository(kvstore.NewMemoryStore(), nil)

	a := newTestAccount(t, "a@example.com")
	b := newTestAccount(t, "b@example.com")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	a.MarkQuizComplete(testNow.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, a))

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, a.ID(), accounts[0].ID())
	assert.True(t, accounts[0].HasCompletedQuiz())
	assert.Equal(t, b.ID(), accounts[1].ID())
}

func TestKVAccountRepository_StaleVersionIsRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewKVAccountRepository(kvstore.NewMemoryStore(), nil)

	account := newTestAccount(t, "ana@example.com")
	require.NoError(t, repo.Save(ctx, account))

	first, err := repo.FindByID(ctx, account.ID())
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, account.ID())
	require.NoError(t, err)

	first.MarkQuizComplete(testNow)
	require.NoError(t, repo.Save(ctx, first))

	second.MarkQuizComplete(testNow)
	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, sharedDomain.ErrConcurrentModification)
}

func TestKVAccountRepository_MalformedDocumentIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewKVAccountRepository(store, nil)

	id := uuid.New()
	require.NoError(t, store.Set(ctx, kvstore.AccountKey(id), []byte("{not json")))
	require.NoError(t, kvstore.SetJSON(ctx, store, kvstore.AccountIndexKey, []uuid.UUID{id}))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, found)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestKVCredentialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewKVCredentialRepository(kvstore.NewMemoryStore())
	id := uuid.New()

	hash, err := repo.Find(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, hash)

	require.NoError(t, repo.Save(ctx, id, "$2a$04$hash"))
	hash, err = repo.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "$2a$04$hash", hash)
}

func TestKVSessionStore(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	sessions := NewKVSessionStore(store, nil)

	_, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	id := uuid.New()
	require.NoError(t, sessions.Start(ctx, id))
	current, ok, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, current)

	require.NoError(t, sessions.End(ctx))
	_, ok, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, kvstore.SessionKey, []byte("garbage")))
	_, ok, err = sessions.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
