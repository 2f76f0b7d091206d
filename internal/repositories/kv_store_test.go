package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"vivuplan/internal/infra"
)

func exerciseKeyValueStore(t *testing.T, store KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, HistoryStorageKey, []byte(`[{"id":"a"}]`)))
	v, found, err := store.Get(ctx, HistoryStorageKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"a"}]`, string(v))

	require.NoError(t, store.Set(ctx, HistoryStorageKey, []byte(`[]`)))
	v, _, err = store.Get(ctx, HistoryStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v))

	require.NoError(t, store.Delete(ctx, HistoryStorageKey))
	_, found, err = store.Get(ctx, HistoryStorageKey)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Delete(ctx, "never-set"))
}

func TestMemoryKeyValueStore(t *testing.T) {
	exerciseKeyValueStore(t, NewMemoryKeyValueStore())
}

func TestMemoryKeyValueStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKeyValueStore()
	buf := []byte(`[1]`)
	require.NoError(t, store.Set(ctx, "k", buf))
	buf[1] = '2'

	v, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(v))
}

func TestGormKeyValueStore_SQLite(t *testing.T) {
	db, err := infra.OpenDatabase(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	exerciseKeyValueStore(t, NewGormKeyValueStore(db))
}
