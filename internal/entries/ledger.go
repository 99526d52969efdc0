// Package entries keeps the per-user, append-only list of mood check-ins.
package entries

import (
	"context"

	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/dmitrijs2005/wellnest/internal/store"
)

const entriesKeyPrefix = "entries:"

// Ledger stores check-ins partitioned by username. Entries are only ever
// appended; there is no edit, delete, size cap, or dedup.
type Ledger struct {
	store store.Store
}

// NewLedger constructs a Ledger bound to the given store.
func NewLedger(s store.Store) *Ledger {
	return &Ledger{store: s}
}

func entriesKey(username string) string {
	return entriesKeyPrefix + username
}

// Init pre-creates an empty partition for a new user. Existing entries are
// left untouched.
func (l *Ledger) Init(ctx context.Context, username string) error {
	raw, err := l.store.Get(ctx, entriesKey(username))
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}
	return store.WriteJSON(ctx, l.store, entriesKey(username), []models.Entry{})
}

// Append adds one check-in to the end of the user's list.
func (l *Ledger) Append(ctx context.Context, username string, e models.Entry) error {
	all := store.ReadJSON(ctx, l.store, entriesKey(username), []models.Entry{})
	all = append(all, e)
	return store.WriteJSON(ctx, l.store, entriesKey(username), all)
}

// AllFor returns the user's full check-in history in storage order.
// A user that has never checked in yields an empty slice.
func (l *Ledger) AllFor(ctx context.Context, username string) ([]models.Entry, error) {
	return store.ReadJSON(ctx, l.store, entriesKey(username), []models.Entry{}), nil
}
