package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellnest/internal/common"
)

// AddTestimonial prompts the logged-in user for a short testimonial and
// prepends it to the shared board.
func (a *App) AddTestimonial(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You must be logged in to add a testimonial.")
		return common.ErrUnauthorized
	}

	text, err := getSimpleText(a.reader,
		fmt.Sprintf("Share your experience (max %d chars)", maxTestimonialLen), a.out)
	if err != nil {
		return err
	}

	if err := validateTestimonial(text); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if _, err := a.board.Add(ctx, text, a.current.Username); err != nil {
		a.logger.Error(ctx, "error adding testimonial", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Thanks — your testimonial was added.")
	return nil
}

// ShowTestimonials prints the shared board, most recent first.
func (a *App) ShowTestimonials(ctx context.Context) error {
	list, err := a.board.All(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No testimonials yet.")
		return nil
	}
	for _, item := range list {
		fmt.Fprintln(a.out, "- "+item.Text)
	}
	return nil
}
