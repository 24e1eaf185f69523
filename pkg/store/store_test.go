package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulink/nebulink/pkg/domain"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc"
	s, err := New(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_Ping(t *testing.T) {
	s := setupStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	account := &domain.Account{
		Name:        "alice",
		AccountName: "@alice@fosstodon.org",
		Instance:    "https://fosstodon.org",
		Token:       "secret",
		Topics:      []string{"golang", "linux"},
	}
	require.NoError(t, s.Account.CreateAccount(ctx, account))
	require.NotZero(t, account.ID)

	got, err := s.Account.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "https://fosstodon.org", got.Instance)
	assert.Equal(t, "secret", got.Token)
	assert.Equal(t, []string{"golang", "linux"}, got.Topics)
	assert.False(t, got.IsActive)
}

func TestAccountRepository_TopicsCapped(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	topics := make([]string, domain.MaxTopics+5)
	for i := range topics {
		topics[i] = fmt.Sprintf("topic-%d", i)
	}

	account := &domain.Account{Name: "bob", Instance: "https://example.social", Topics: topics}
	require.NoError(t, s.Account.CreateAccount(ctx, account))

	got, err := s.Account.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, got.Topics, domain.MaxTopics)
	assert.Equal(t, "topic-0", got.Topics[0])
}

func TestAccountRepository_SetActiveAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first := &domain.Account{Name: "a", Instance: "https://one.social"}
	second := &domain.Account{Name: "b", Instance: "https://two.social"}
	require.NoError(t, s.Account.CreateAccount(ctx, first))
	require.NoError(t, s.Account.CreateAccount(ctx, second))

	require.NoError(t, s.Account.SetActiveAccount(ctx, first.ID))
	active, err := s.Account.GetActiveAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ID, active.ID)

	// switching deactivates the previous one
	require.NoError(t, s.Account.SetActiveAccount(ctx, second.ID))
	active, err = s.Account.GetActiveAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	accounts, err := s.Account.GetAccounts(ctx)
	require.NoError(t, err)
	activeCount := 0
	for _, a := range accounts {
		if a.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount, "at most one active account")
}

func TestAccountRepository_SetActiveAccountMissing(t *testing.T) {
	s := setupStore(t)
	err := s.Account.SetActiveAccount(context.Background(), 9999)
	assert.ErrorContains(t, err, "not found")
}

func TestAccountRepository_GetActiveAccountNone(t *testing.T) {
	s := setupStore(t)
	active, err := s.Account.GetActiveAccount(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestAccountRepository_SetTopics(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	account := &domain.Account{Name: "carol", Instance: "https://example.social"}
	require.NoError(t, s.Account.CreateAccount(ctx, account))

	require.NoError(t, s.Account.SetTopics(ctx, account.ID, []string{"music", "art"}))
	got, err := s.Account.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"music", "art"}, got.Topics)

	require.NoError(t, s.Account.SetTopics(ctx, account.ID, nil))
	got, err = s.Account.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Topics)
}

func TestAccountRepository_UpdateAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	account := &domain.Account{Name: "dave", Instance: "https://old.social"}
	require.NoError(t, s.Account.CreateAccount(ctx, account))

	account.Instance = "https://new.social"
	account.Token = "fresh"
	require.NoError(t, s.Account.UpdateAccount(ctx, account))

	got, err := s.Account.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://new.social", got.Instance)
	assert.Equal(t, "fresh", got.Token)
}

func TestAccountRepository_DeleteAccount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	account := &domain.Account{Name: "eve", Instance: "https://example.social"}
	require.NoError(t, s.Account.CreateAccount(ctx, account))

	require.NoError(t, s.Account.DeleteAccount(ctx, account.ID))
	_, err := s.Account.GetAccount(ctx, account.ID)
	assert.Error(t, err)

	assert.ErrorContains(t, s.Account.DeleteAccount(ctx, account.ID), "not found")
}

func TestSettingRepository_GetSet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	value, err := s.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value, "missing key reads as empty, not an error")

	require.NoError(t, s.Setting.SetSetting(ctx, "theme", "dark"))
	value, err = s.Setting.GetSetting(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	// upsert
	require.NoError(t, s.Setting.SetSetting(ctx, "theme", "light"))
	value, err = s.Setting.GetSetting(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestSettingRepository_Bool(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	got, err := s.Setting.GetBool(ctx, SettingAIEnabled, true)
	require.NoError(t, err)
	assert.True(t, got, "unset key falls back to default")

	require.NoError(t, s.Setting.SetBool(ctx, SettingAIEnabled, false))
	got, err = s.Setting.GetBool(ctx, SettingAIEnabled, true)
	require.NoError(t, err)
	assert.False(t, got)

	require.NoError(t, s.Setting.SetBool(ctx, SettingSafetyEnabled, true))
	got, err = s.Setting.GetBool(ctx, SettingSafetyEnabled, false)
	require.NoError(t, err)
	assert.True(t, got)
}
