package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_StartCurrentEnd(t *testing.T) {
	m := NewManager(store.NewMemoryStore())
	ctx := context.Background()

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur, "no session on first run")

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	started, err := m.Start(ctx, "sam", "sam@x.com")
	require.NoError(t, err)
	assert.Equal(t, "sam", started.Username)

	cur, err = m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "sam", cur.Username)
	assert.Equal(t, "sam@x.com", cur.Email)
	assert.True(t, cur.LoggedAt.Equal(fixed))

	require.NoError(t, m.End(ctx))
	cur, err = m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestManager_EndIsIdempotent(t *testing.T) {
	m := NewManager(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, m.End(ctx))
	require.NoError(t, m.End(ctx))
}

func TestManager_StartReplacesExistingSession(t *testing.T) {
	m := NewManager(store.NewMemoryStore())
	ctx := context.Background()

	_, err := m.Start(ctx, "sam", "sam@x.com")
	require.NoError(t, err)
	_, err = m.Start(ctx, "kim", "kim@x.com")
	require.NoError(t, err)

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "kim", cur.Username)
}

func TestManager_MalformedSessionTreatedAsAbsent(t *testing.T) {
	s := store.NewMemoryStore()
	m := NewManager(s)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "session", []byte(`{broken`)))

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}
