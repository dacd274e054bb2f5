package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register prompts for email, display name and password and creates a new
// account. On success the new session is active.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Choose a password", a.out)
	if err != nil {
		return err
	}

	if email == "" || name == "" || len(password) == 0 {
		return fmt.Errorf("email, name and password are required")
	}

	acc, err := a.authService.Register(ctx, email, password, name)
	if err != nil {
		return err
	}

	a.setAccount(acc)
	fmt.Fprintf(a.out, "Welcome, %s!\n", acc.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	acc, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.setAccount(acc)
	fmt.Fprintf(a.out, "Logged in as %s\n", acc.Email)
	return nil
}

// Logout drops the session token.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.setAccount(nil)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
