package models

import "time"

// Session is the single active logged-in identity, persisted under the
// "session" key. At most one exists at a time.
type Session struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	LoggedAt time.Time `json:"loggedAt"`
}
