// Package report computes the rolling weekly summary from check-in entries
// and renders it as a simple proportional bar chart.
package report

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/models"
)

// DayLayout is the calendar-day label format used for buckets.
const DayLayout = "2006-01-02"

// DayBucket holds the mood values recorded on one calendar day.
type DayBucket struct {
	// Date is the local calendar-day label, DayLayout formatted.
	Date string

	// Moods are the mood values for that day, in entry order.
	Moods []int
}

// Summary is the aggregate over a window of calendar days.
type Summary struct {
	// Overall pools every mood value across the whole window. It is only
	// meaningful when HasData is true.
	Overall float64

	// HasData reports whether any entry fell inside the window.
	HasData bool

	PerDay []DayBucket
}

// OverallString formats the pooled average for display, or the "no data"
// sentinel when the window is empty, so callers never show a misleading 0.
func (s Summary) OverallString() string {
	if !s.HasData {
		return "no data"
	}
	return fmt.Sprintf("%.2f", s.Overall)
}

// BucketByDay assigns entries to the most recent windowDays local calendar
// days ending at now, oldest first. Assignment compares calendar days, not
// rolling 24h periods; entry order is preserved within a day. The result
// always has exactly windowDays buckets.
func BucketByDay(entries []models.Entry, windowDays int, now time.Time) []DayBucket {
	buckets := make([]DayBucket, 0, windowDays)

	for i := windowDays - 1; i >= 0; i-- {
		label := now.AddDate(0, 0, -i).Format(DayLayout)

		var moods []int
		for _, e := range entries {
			if e.Date.Local().Format(DayLayout) == label {
				moods = append(moods, e.Mood)
			}
		}
		buckets = append(buckets, DayBucket{Date: label, Moods: moods})
	}

	return buckets
}

// AverageOf returns the arithmetic mean of moods. The second return value is
// false when moods is empty; an empty day has no average, not an average of 0.
func AverageOf(moods []int) (float64, bool) {
	if len(moods) == 0 {
		return 0, false
	}
	total := 0
	for _, m := range moods {
		total += m
	}
	return float64(total) / float64(len(moods)), true
}

// WeeklySummary buckets entries over the window and pools every mood value
// across all days into one overall average. It is not an average of daily
// averages: each check-in carries equal weight.
func WeeklySummary(entries []models.Entry, windowDays int, now time.Time) Summary {
	perDay := BucketByDay(entries, windowDays, now)

	var all []int
	for _, d := range perDay {
		all = append(all, d.Moods...)
	}

	overall, ok := AverageOf(all)
	return Summary{Overall: overall, HasData: ok, PerDay: perDay}
}
