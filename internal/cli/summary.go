package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/common"
	"github.com/dmitrijs2005/wellnest/internal/report"
)

const entryTimeLayout = "2006-01-02 15:04"

// Summary prints the rolling weekly summary for the logged-in user: the
// pooled average, the last check-in time, and a per-day bar chart.
func (a *App) Summary(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return common.ErrUnauthorized
	}

	all, err := a.entries.AllFor(ctx, a.current.Username)
	if err != nil {
		return err
	}

	s := report.WeeklySummary(all, a.config.WindowDays, time.Now())

	if s.HasData {
		fmt.Fprintf(a.out, "Weekly average: %s / 5\n", s.OverallString())
	} else {
		fmt.Fprintln(a.out, "Weekly average: —")
	}

	if len(all) > 0 {
		fmt.Fprintf(a.out, "Last entry: %s\n", all[len(all)-1].Date.Local().Format(entryTimeLayout))
	} else {
		fmt.Fprintln(a.out, "Last entry: —")
	}

	report.RenderBars(a.out, s.PerDay)
	return nil
}

// List prints the full check-in history, oldest first.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return common.ErrUnauthorized
	}

	all, err := a.entries.AllFor(ctx, a.current.Username)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(a.out, "No check-ins yet.")
		return nil
	}

	for _, e := range all {
		line := fmt.Sprintf("%s  mood %d", e.Date.Local().Format(entryTimeLayout), e.Mood)
		if len(e.Symptoms) > 0 {
			line += "  [" + strings.Join(e.Symptoms, ", ") + "]"
		}
		if e.Notes != "" {
			line += "  " + e.Notes
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}
