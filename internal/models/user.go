// Package models defines the record types persisted in the local store.
package models

// User is an account record as persisted under the "users" key.
//
// The password itself is never stored: Salt and Verifier hold a per-user
// random salt and an argon2id-derived verifier, checked in constant time
// on login.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// PublicUser is the projection of a User safe to hand to presentation code.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the safe projection of u.
func (u User) Public() PublicUser {
	return PublicUser{Username: u.Username, Email: u.Email}
}
