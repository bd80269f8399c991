package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReadAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	var dest []string
	ok, err := store.Read(context.Background(), KeyCategories, &dest)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, dest)
}

func TestMemoryStoreWriteReplacesValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeyCategories, []string{"IT"}))
	require.NoError(t, store.Write(ctx, KeyCategories, []string{"COMPS", "EXTC"}))

	var dest []string
	ok, err := store.Read(ctx, KeyCategories, &dest)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"COMPS", "EXTC"}, dest)
}

func TestMemoryStoreMalformedValueTreatedAsAbsent(t *testing.T) {
	store := NewMemoryStore()
	store.data[KeyNotices] = []byte("{not valid json")

	var dest []string
	ok, err := store.Read(context.Background(), KeyNotices, &dest)
	require.NoError(t, err)
	assert.False(t, ok)
}
