// Package testimonials keeps the shared, most-recent-first testimonial board.
package testimonials

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/dmitrijs2005/wellnest/internal/store"
	"github.com/google/uuid"
)

const testimonialsKey = "testimonials"

// Separator between the testimonial text and the author suffix.
const authorSeparator = " — "

func seed() []models.Testimonial {
	return []models.Testimonial{
		{Text: "“WellNest helped me recognize my stress patterns.” — Sam"},
		{Text: "“I love how quick and easy check-ins are!” — Noor"},
		{Text: "“The weekly chart nudged me to improve my sleep.” — Malik"},
	}
}

// Board stores testimonials shared across all users. New items are
// prepended, so All returns most-recent-first.
type Board struct {
	store store.Store
	now   func() time.Time
}

// NewBoard constructs a Board bound to the given store.
func NewBoard(s store.Store) *Board {
	return &Board{store: s, now: time.Now}
}

// EnsureSeeded writes the fixed three-item seed if the store holds no
// testimonial list yet, and returns the current list. Call it once at
// process start; calling it again is harmless.
func (b *Board) EnsureSeeded(ctx context.Context) ([]models.Testimonial, error) {
	existing := store.ReadJSON[[]models.Testimonial](ctx, b.store, testimonialsKey, nil)
	if existing != nil {
		return existing, nil
	}

	seeded := seed()
	if err := store.WriteJSON(ctx, b.store, testimonialsKey, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// Add prepends a new testimonial built from text and author and returns the
// updated list. Length limits are the caller's concern.
func (b *Board) Add(ctx context.Context, text, author string) ([]models.Testimonial, error) {
	all := store.ReadJSON(ctx, b.store, testimonialsKey, []models.Testimonial{})

	item := models.Testimonial{
		ID:      uuid.NewString(),
		Text:    text + authorSeparator + author,
		Created: b.now(),
	}

	all = append([]models.Testimonial{item}, all...)
	if err := store.WriteJSON(ctx, b.store, testimonialsKey, all); err != nil {
		return nil, err
	}
	return all, nil
}

// All returns the board, most recent first.
func (b *Board) All(ctx context.Context) ([]models.Testimonial, error) {
	return store.ReadJSON(ctx, b.store, testimonialsKey, []models.Testimonial{}), nil
}
