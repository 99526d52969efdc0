// Package users implements account registration and credential lookup over
// the local store.
package users

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"github.com/dmitrijs2005/wellnest/internal/common"
	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/dmitrijs2005/wellnest/internal/store"
	"golang.org/x/crypto/argon2"
)

const usersKey = "users"

const saltSize = 32

// Directory provides registration and lookup of user accounts.
// Username and email are unique case-insensitively across all users.
type Directory struct {
	store store.Store
}

// NewDirectory constructs a Directory bound to the given store.
func NewDirectory(s store.Store) *Directory {
	return &Directory{store: s}
}

// deriveVerifier turns a password and salt into the stored verifier:
// argon2id key derivation followed by sha256. The password is never
// persisted in recoverable form.
func deriveVerifier(password, salt []byte) []byte {
	key := argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	hash := sha256.Sum256(key)
	return hash[:]
}

// Register creates a new account. It fails with common.ErrDuplicateUsername
// or common.ErrDuplicateEmail when another user already holds the name or
// address in any letter casing. On success the public projection of the new
// user is returned.
func (d *Directory) Register(ctx context.Context, username, email string, password []byte) (*models.PublicUser, error) {
	all := store.ReadJSON(ctx, d.store, usersKey, []models.User{})

	// username collisions win over email collisions when both occur
	for _, u := range all {
		if strings.EqualFold(u.Username, username) {
			return nil, common.ErrDuplicateUsername
		}
	}
	for _, u := range all {
		if strings.EqualFold(u.Email, email) {
			return nil, common.ErrDuplicateEmail
		}
	}

	salt := common.GenerateRandByteArray(saltSize)
	user := models.User{
		Username: username,
		Email:    email,
		Salt:     salt,
		Verifier: deriveVerifier(password, salt),
	}

	all = append(all, user)
	if err := store.WriteJSON(ctx, d.store, usersKey, all); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// FindByCredential looks up a user whose username or email matches
// credential case-insensitively and verifies the password. It fails with
// common.ErrNotFound when no account matches, and with
// common.ErrWrongPassword when the account exists but the password does
// not verify. The comparison is constant-time.
func (d *Directory) FindByCredential(ctx context.Context, credential string, password []byte) (*models.PublicUser, error) {
	all := store.ReadJSON(ctx, d.store, usersKey, []models.User{})

	for _, u := range all {
		if !strings.EqualFold(u.Username, credential) && !strings.EqualFold(u.Email, credential) {
			continue
		}
		candidate := deriveVerifier(password, u.Salt)
		if subtle.ConstantTimeCompare(u.Verifier, candidate) == 0 {
			return nil, common.ErrWrongPassword
		}
		pub := u.Public()
		return &pub, nil
	}

	return nil, common.ErrNotFound
}
