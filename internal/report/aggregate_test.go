package report

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOn(day time.Time, mood int) models.Entry {
	return models.Entry{Date: day, Mood: mood}
}

func TestBucketByDay_WindowShape(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 0, 0, 0, time.Local)

	buckets := BucketByDay(nil, 7, now)

	require.Len(t, buckets, 7)
	for i, b := range buckets {
		want := now.AddDate(0, 0, i-6).Format(DayLayout)
		assert.Equal(t, want, b.Date, "buckets must be consecutive days, oldest first")
		assert.Empty(t, b.Moods)
	}
	assert.Equal(t, "2026-03-07", buckets[6].Date, "last bucket is today")
}

func TestBucketByDay_AssignsByCalendarDay(t *testing.T) {
	now := time.Date(2026, 3, 7, 8, 0, 0, 0, time.Local)

	// 23:30 yesterday is less than 24h before `now` but a different calendar day
	lateYesterday := time.Date(2026, 3, 6, 23, 30, 0, 0, time.Local)
	earlierToday := time.Date(2026, 3, 7, 0, 10, 0, 0, time.Local)

	buckets := BucketByDay([]models.Entry{
		entryOn(lateYesterday, 2),
		entryOn(earlierToday, 4),
		entryOn(now, 5),
	}, 7, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, []int{2}, buckets[5].Moods)
	assert.Equal(t, []int{4, 5}, buckets[6].Moods, "entry order preserved within the day")
}

func TestBucketByDay_ExcludesEntriesOutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)
	tooOld := now.AddDate(0, 0, -7)

	buckets := BucketByDay([]models.Entry{entryOn(tooOld, 1)}, 7, now)

	for _, b := range buckets {
		assert.Empty(t, b.Moods)
	}
}

func TestBucketByDay_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)

	buckets := BucketByDay(nil, 7, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, "2026-02-24", buckets[0].Date)
	assert.Equal(t, "2026-03-02", buckets[6].Date)
}

func TestAverageOf_EmptyIsNotZero(t *testing.T) {
	_, ok := AverageOf(nil)
	assert.False(t, ok)

	avg, ok := AverageOf([]int{4})
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)

	avg, ok = AverageOf([]int{1, 2, 4})
	require.True(t, ok)
	assert.InDelta(t, 7.0/3.0, avg, 1e-9)
}

func TestWeeklySummary_PoolsAcrossDays(t *testing.T) {
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)

	// day -1: two entries (3, 5); today: one entry (1).
	// pooled mean is 3.0, while the average of daily averages would be 2.5.
	s := WeeklySummary([]models.Entry{
		entryOn(now.AddDate(0, 0, -1), 3),
		entryOn(now.AddDate(0, 0, -1), 5),
		entryOn(now, 1),
	}, 7, now)

	require.True(t, s.HasData)
	assert.InDelta(t, 3.0, s.Overall, 1e-9)
	assert.Equal(t, "3.00", s.OverallString())
	require.Len(t, s.PerDay, 7)
}

func TestWeeklySummary_NoDataSentinel(t *testing.T) {
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.Local)

	s := WeeklySummary(nil, 7, now)
	assert.False(t, s.HasData)
	assert.Equal(t, "no data", s.OverallString())

	// an entry outside the window still counts as no data
	s = WeeklySummary([]models.Entry{entryOn(now.AddDate(0, 0, -10), 5)}, 7, now)
	assert.False(t, s.HasData)
	assert.Equal(t, "no data", s.OverallString())
}
