package models

import "time"

// Testimonial is one item on the shared board. The display text already
// includes the author suffix; seed items carry a zero Created time.
type Testimonial struct {
	ID      string    `json:"id,omitempty"`
	Text    string    `json:"text"`
	Created time.Time `json:"created,omitzero"`
}
