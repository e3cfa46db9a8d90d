package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
	"github.com/dmitrijs2005/shopkeeper/internal/models"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) kvstore.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kvstore (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return kvstore.NewSQLiteStore(db)
}

func TestSaveAndLoad_Roundtrip(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	items := []models.CartItem{
		{ProductID: 1, Name: "Dumbbells", Price: 49.99, Quantity: 2},
		{ProductID: 2, Name: "Jump Rope", Price: 9.99, Quantity: 1},
	}
	require.NoError(t, Save(ctx, st, "cart:guest", items))

	got := Load(ctx, st, "cart:guest", []models.CartItem{})
	assert.Equal(t, items, got)
}

func TestLoad_AbsentKeyReturnsFallback(t *testing.T) {
	st := setupStore(t)

	got := Load(context.Background(), st, "cart:guest", []models.CartItem{})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestLoad_MalformedValueReturnsFallback(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "cart:guest", []byte(`{not json`)))

	got := Load(ctx, st, "cart:guest", []models.CartItem{{ProductID: 9, Quantity: 1}})
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].ProductID)
}

func TestLoad_StoreErrorReturnsFallback(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE kvstore (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	st := kvstore.NewSQLiteStore(db)
	got := Load(context.Background(), st, "session", "fallback")
	assert.Equal(t, "fallback", got)
}

func TestClear_RemovesValue(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	require.NoError(t, Save(ctx, st, "session", models.Session{ID: "u1"}))
	require.NoError(t, Clear(ctx, st, "session"))

	got := Load[*models.Session](ctx, st, "session", nil)
	assert.Nil(t, got)
}

func TestClear_AbsentKeyIsNoop(t *testing.T) {
	st := setupStore(t)
	require.NoError(t, Clear(context.Background(), st, "absent"))
}

func TestSave_StoredValueIsUTF8JSON(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	require.NoError(t, Save(ctx, st, "session", models.Session{
		ID: "u1", Name: "Alice", Email: "alice@example.com", Role: models.RoleUser,
	}))

	raw, err := st.Get(ctx, "session")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","name":"Alice","email":"alice@example.com","role":"user"}`, string(raw))
}
