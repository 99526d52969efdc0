package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/common"
	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/google/uuid"
)

// CheckIn records one mood check-in for the logged-in user: a mood score,
// optional comma-separated symptom tags, and an optional multiline note.
func (a *App) CheckIn(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return common.ErrUnauthorized
	}

	moodLine, err := getSimpleText(a.reader,
		fmt.Sprintf("Mood (%d-%d)", models.MoodMin, models.MoodMax), a.out)
	if err != nil {
		return err
	}
	mood, err := strconv.Atoi(moodLine)
	if err != nil {
		err = validateMood(0)
	} else {
		err = validateMood(mood)
	}
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	symptomsLine, err := getSimpleText(a.reader, "Symptoms (comma-separated, empty for none)", a.out)
	if err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes", a.out)
	if err != nil {
		return err
	}

	entry := models.Entry{
		ID:       uuid.NewString(),
		Date:     time.Now(),
		Mood:     mood,
		Symptoms: splitSymptoms(symptomsLine),
		Notes:    notes,
	}

	if err := a.entries.Append(ctx, a.current.Username, entry); err != nil {
		a.logger.Error(ctx, "error saving check-in", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Check-in saved.")
	return nil
}
