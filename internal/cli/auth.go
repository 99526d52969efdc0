package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellnest/internal/common"
	"github.com/dmitrijs2005/wellnest/internal/entries"
	"github.com/dmitrijs2005/wellnest/internal/models"
	"github.com/dmitrijs2005/wellnest/internal/session"
	"github.com/dmitrijs2005/wellnest/internal/store"
	"github.com/dmitrijs2005/wellnest/internal/users"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details, validates them at the UI boundary,
// creates the account, and logs the new user in (the signup flow also
// pre-creates the user's empty entries partition). Password material is
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := validateRegistration(username, email, password, confirm); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	// the user record, the session, and the empty entries partition are
	// written as one atomic unit
	var sess *models.Session
	err = a.kv.WithinTx(ctx, func(s store.Store) error {
		pub, err := users.NewDirectory(s).Register(ctx, username, email, password)
		if err != nil {
			return err
		}
		sess, err = session.NewManager(s).Start(ctx, pub.Username, pub.Email)
		if err != nil {
			return err
		}
		return entries.NewLedger(s).Init(ctx, pub.Username)
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateUsername):
			fmt.Fprintln(a.out, "Username already taken.")
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Fprintln(a.out, "Email already registered.")
		default:
			a.logger.Error(ctx, "registration failed", "error", err)
		}
		return err
	}
	a.current = sess

	fmt.Fprintln(a.out, "Account created! You are now logged in.")
	return nil
}

// Login prompts for a credential (username or email) and password and starts
// a session on success. A wrong password for an existing account and an
// unknown credential produce distinct messages.
func (a *App) Login(ctx context.Context) error {
	credential, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validateLogin(credential, password); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	pub, err := a.users.FindByCredential(ctx, credential, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Fprintln(a.out, "No account found with that username/email.")
		case errors.Is(err, common.ErrWrongPassword):
			fmt.Fprintln(a.out, "Incorrect password.")
		default:
			a.logger.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	sess, err := a.session.Start(ctx, pub.Username, pub.Email)
	if err != nil {
		return err
	}
	a.current = sess

	fmt.Fprintf(a.out, "Welcome, %s!\n", pub.Username)
	return nil
}

// Logout ends the persisted session and clears the in-memory copy.
// Logging out while logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.End(ctx); err != nil {
		return err
	}
	a.current = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
