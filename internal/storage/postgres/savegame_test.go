package postgres_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manus-games/shadowcity/internal/storage/postgres"
	"github.com/manus-games/shadowcity/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func setupSaveRepos(t *testing.T) (*postgres.AccountRepository, *postgres.SaveGameRepository, int64) {
	t.Helper()
	pool := testutil.NewPool(t)
	acctRepo := postgres.NewAccountRepository(pool)
	acct, err := acctRepo.Create(context.Background(), uniqueName("user"), "password123")
	require.NoError(t, err)
	return acctRepo, postgres.NewSaveGameRepository(pool), acct.ID
}

func TestAccountRepository_CreateAndAuthenticate(t *testing.T) {
	repo, _, _ := setupSaveRepos(t)
	ctx := context.Background()
	name := uniqueName("vera")

	acct, err := repo.Create(ctx, name, "secret99")
	require.NoError(t, err)
	assert.Greater(t, acct.ID, int64(0))
	assert.Equal(t, name, acct.Username)
	assert.NotEqual(t, "secret99", acct.PasswordHash)
	assert.False(t, acct.CreatedAt.IsZero())

	got, err := repo.Authenticate(ctx, name, "secret99")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, got.ID)

	_, err = repo.Authenticate(ctx, name, "wrong")
	assert.ErrorIs(t, err, postgres.ErrInvalidCredentials)

	_, err = repo.Authenticate(ctx, uniqueName("ghost"), "secret99")
	assert.ErrorIs(t, err, postgres.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	repo, _, _ := setupSaveRepos(t)
	ctx := context.Background()
	name := uniqueName("dup")

	_, err := repo.Create(ctx, name, "password1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, name, "password2")
	assert.ErrorIs(t, err, postgres.ErrAccountExists)
}

func TestAccountRepository_RejectsShortInputs(t *testing.T) {
	repo, _, _ := setupSaveRepos(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "ab", "password1")
	assert.ErrorIs(t, err, postgres.ErrUsernameTooShort)
	_, err = repo.Create(ctx, uniqueName("ok"), "123")
	assert.ErrorIs(t, err, postgres.ErrPasswordTooShort)
}

func TestAccountRepository_GetByUsername(t *testing.T) {
	repo, _, _ := setupSaveRepos(t)
	ctx := context.Background()
	name := uniqueName("lookup")

	created, err := repo.Create(ctx, name, "password1")
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByUsername(ctx, uniqueName("nobody"))
	assert.ErrorIs(t, err, postgres.ErrAccountNotFound)
}

func TestSaveGameRepository_RoundTrip(t *testing.T) {
	_, saves, accountID := setupSaveRepos(t)
	ctx := context.Background()

	state := json.RawMessage(`{"player": {"name": "Vera", "money": 500}, "clock": {"hour": 8, "day": 1}}`)
	require.NoError(t, saves.Upsert(ctx, accountID, state))

	got, err := saves.Load(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, got.AccountID)
	assert.JSONEq(t, string(state), string(got.State))
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSaveGameRepository_UpsertReplaces(t *testing.T) {
	_, saves, accountID := setupSaveRepos(t)
	ctx := context.Background()

	require.NoError(t, saves.Upsert(ctx, accountID, json.RawMessage(`{"rev": 1}`)))
	require.NoError(t, saves.Upsert(ctx, accountID, json.RawMessage(`{"rev": 2}`)))

	got, err := saves.Load(ctx, accountID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rev": 2}`, string(got.State))
}

func TestSaveGameRepository_LoadMissing(t *testing.T) {
	_, saves, accountID := setupSaveRepos(t)
	_, err := saves.Load(context.Background(), accountID)
	assert.ErrorIs(t, err, postgres.ErrSaveNotFound)
}

func TestSaveGameRepository_Delete(t *testing.T) {
	_, saves, accountID := setupSaveRepos(t)
	ctx := context.Background()

	require.NoError(t, saves.Upsert(ctx, accountID, json.RawMessage(`{}`)))
	require.NoError(t, saves.Delete(ctx, accountID))

	_, err := saves.Load(ctx, accountID)
	assert.ErrorIs(t, err, postgres.ErrSaveNotFound)
	assert.ErrorIs(t, saves.Delete(ctx, accountID), postgres.ErrSaveNotFound)
}
