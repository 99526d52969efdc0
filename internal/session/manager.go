// Package session tracks the single active logged-in identity.
package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/dmitrijs2005/wellnest/internal/store"
)

const sessionKey = "session"

// Manager owns the singleton session slot in the store.
// The lifecycle is LoggedOut --Start--> LoggedIn --End--> LoggedOut.
type Manager struct {
	store store.Store
	now   func() time.Time
}

// NewManager constructs a Manager bound to the given store.
func NewManager(s store.Store) *Manager {
	return &Manager{store: s, now: time.Now}
}

// Start overwrites the session slot with the given identity and the current
// time. Any previously active session is replaced.
func (m *Manager) Start(ctx context.Context, username, email string) (*models.Session, error) {
	sess := models.Session{Username: username, Email: email, LoggedAt: m.now()}
	if err := store.WriteJSON(ctx, m.store, sessionKey, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Current returns the active session, or nil if nobody is logged in.
// Malformed persisted data is treated as no session.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	return store.ReadJSON[*models.Session](ctx, m.store, sessionKey, nil), nil
}

// End clears the session slot. Ending with no active session is a no-op.
func (m *Manager) End(ctx context.Context) error {
	return m.store.Delete(ctx, sessionKey)
}
