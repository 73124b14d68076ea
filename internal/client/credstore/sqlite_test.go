package credstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM credentials`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, StoredCredential{Token: "tok123", IssuedAt: issued}))

	cred, ok := store.Load(ctx)
	require.True(t, ok)
	require.Equal(t, "tok123", cred.Token)
	require.True(t, cred.IssuedAt.Equal(issued))
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Save(ctx, StoredCredential{Token: "first", IssuedAt: time.Now()}))
	require.NoError(t, store.Save(ctx, StoredCredential{Token: "second", IssuedAt: time.Now()}))

	cred, ok := store.Load(ctx)
	require.True(t, ok)
	require.Equal(t, "second", cred.Token)
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	_, ok := store.Load(ctx)
	require.False(t, ok)
}

func TestSQLiteStore_LoadCorruptedIsNone(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	store := NewSQLiteStore(db)

	_, err := db.Exec(`INSERT INTO credentials(key, value) VALUES ('credential', 'not-json')`)
	require.NoError(t, err)

	_, ok := store.Load(ctx)
	require.False(t, ok, "corrupted record must be reported as none, not as an error")
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Save(ctx, StoredCredential{Token: "tok", IssuedAt: time.Now()}))
	require.NoError(t, store.Clear(ctx))

	_, ok := store.Load(ctx)
	require.False(t, ok)
}

func TestSQLiteStore_ClearEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupDB(t))

	require.NoError(t, store.Clear(ctx))
}
