package cli

import (
	"context"
	"errors"
	"os"

	"github.com/craftops/atelier/internal/client/session"
	"github.com/craftops/atelier/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate. Failures are
// reported to the user with a classified reason; the session manager has
// already recorded the Failed state by the time the error returns.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.manager.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			printlnFn("Invalid email or password.")
		case errors.Is(err, common.ErrUnreachable):
			printlnFn("Server unreachable, try again later.")
		case errors.Is(err, common.ErrAuthInProgress):
			printlnFn("An authentication attempt is already running.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Welcome,", a.manager.Current().User.Name + "!")
	return nil
}

// Register prompts for a profile and attempts to create an account. Empty
// required fields are rejected locally, before any network round trip.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.manager.Register(ctx, session.Profile{Name: name, Email: email, Password: password})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			printlnFn("Name, email and password are required.")
		case errors.Is(err, common.ErrUnreachable):
			printlnFn("Server unreachable, try again later.")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Account created, welcome!")
	return nil
}

// Logout ends the session and erases the persisted credential. Never fails.
func (a *App) Logout(ctx context.Context) error {
	a.manager.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
