package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// every pooled connection would otherwise get its own :memory: database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte(`{"a":1}`)))

	v, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte("old")))
	require.NoError(t, s.Set(ctx, "k1", []byte("new")))

	v, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestSQLiteStore_GetMissingReturnsNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k1"))

	v, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Nil(t, v)

	// deleting again is a no-op
	require.NoError(t, s.Delete(ctx, "k1"))
}

func TestSQLiteStore_WithinTxCommits(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx Store) error {
		if err := tx.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return tx.Set(ctx, "b", []byte("2"))
	})
	require.NoError(t, err)

	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	v, err = s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestSQLiteStore_WithinTxRollsBackOnError(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(tx Store) error {
		if err := tx.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// nothing from the failed unit is visible
	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteStore_WithinTxNestedRunsInOuter(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx Store) error {
		inner, ok := tx.(*SQLiteStore)
		require.True(t, ok)
		return inner.WithinTx(ctx, func(tx2 Store) error {
			return tx2.Set(ctx, "k", []byte("v"))
		})
	})
	require.NoError(t, err)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:initdb_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, "k", []byte("v")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}
