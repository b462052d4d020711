package cli

import (
	"context"
	"errors"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session manager has persisted the user and the prompt picks
// up the new identity. The password byte slice is wiped before returning.
// Any I/O or authentication error is reported to the user and returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	user := a.session.CurrentUser()
	printlnFn("Welcome back, " + user.Name + "!")
	return nil
}

// Register prompts for a display name, email, password, and birth date, and
// attempts to create an account. A successful registration also opens the
// session, so no separate login is needed.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name (leave empty to derive from email)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	birthDate, err := getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, name, email, string(password), birthDate); err != nil {
		switch {
		case errors.Is(err, session.ErrBirthDateRequired):
			printlnFn("Registration failed: a birth date is required.")
		case errors.Is(err, session.ErrInvalidBirthDate):
			printlnFn("Registration failed: birth date must look like 1990-06-15.")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Success! You are now logged in.")
	return nil
}

// Logout ends the session and clears the persisted copy.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
