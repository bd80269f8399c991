package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/domain"
)

func TestSeedFreshStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, store, zap.NewNop()))

	var categories []string
	ok, err := store.Read(ctx, KeyCategories, &categories)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"BSH", "IT", "COMPS", "EXTC", "IEEE", "IET", "IETE"}, categories)

	var users []domain.User
	ok, err = store.Read(ctx, KeyUsers, &users)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, users)

	var notices []domain.Notice
	ok, err = store.Read(ctx, KeyNotices, &notices)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, notices)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, store, zap.NewNop()))
	require.NoError(t, store.Write(ctx, KeyCategories, []string{"IT", "CUSTOM"}))
	require.NoError(t, store.Write(ctx, KeyUsers, []domain.User{{ID: "u_1", Email: "a@x.com"}}))

	require.NoError(t, Seed(ctx, store, zap.NewNop()))

	var categories []string
	_, err := store.Read(ctx, KeyCategories, &categories)
	require.NoError(t, err)
	assert.Equal(t, []string{"IT", "CUSTOM"}, categories, "existing data must never be overwritten")

	var users []domain.User
	_, err = store.Read(ctx, KeyUsers, &users)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u_1", users[0].ID)
}
