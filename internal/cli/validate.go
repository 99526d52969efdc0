package cli

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/wellnest/internal/common"
	"github.com/dmitrijs2005/wellnest/internal/models"
)

const (
	minPasswordLen    = 5
	maxTestimonialLen = 200
)

// validateRegistration checks raw signup input at the UI boundary. All
// failures wrap common.ErrValidation with a user-presentable message.
func validateRegistration(username, email string, password, confirm []byte) error {
	if username == "" || email == "" || len(password) == 0 {
		return fmt.Errorf("%w: please fill all fields", common.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: enter a valid email", common.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password should be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	if !bytes.Equal(password, confirm) {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return nil
}

// validateLogin checks that both login fields were supplied.
func validateLogin(credential string, password []byte) error {
	if credential == "" || len(password) == 0 {
		return fmt.Errorf("%w: please fill both fields", common.ErrValidation)
	}
	return nil
}

func validateMood(mood int) error {
	if mood < models.MoodMin || mood > models.MoodMax {
		return fmt.Errorf("%w: select a mood (%d-%d)", common.ErrValidation, models.MoodMin, models.MoodMax)
	}
	return nil
}

func validateTestimonial(text string) error {
	// the cap is in characters, not bytes
	if text == "" || utf8.RuneCountInString(text) > maxTestimonialLen {
		return fmt.Errorf("%w: please write a short testimonial (max %d chars)", common.ErrValidation, maxTestimonialLen)
	}
	return nil
}

// splitSymptoms turns a comma-separated input line into trimmed tags,
// dropping empties.
func splitSymptoms(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
