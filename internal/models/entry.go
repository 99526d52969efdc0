package models

import "time"

// Mood bounds for a check-in.
const (
	MoodMin = 1
	MoodMax = 5
)

// Entry is one mood check-in. Entries are append-only and belong to exactly
// one user; insertion order is chronological order and is never re-sorted.
type Entry struct {
	// ID is a globally unique identifier for the entry.
	ID string `json:"id"`

	// Date is the moment the check-in was recorded.
	Date time.Time `json:"date"`

	// Mood is the self-reported score, MoodMin..MoodMax.
	Mood int `json:"mood"`

	// Symptoms holds free-form symptom tags.
	Symptoms []string `json:"symptoms"`

	// Notes is an optional free-text note.
	Notes string `json:"notes"`
}
