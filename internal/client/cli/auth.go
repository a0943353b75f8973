package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, an email and a password typed twice, and
// creates the account. It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		return errPasswordMismatch
	}

	user, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Registered %s. Use 'login' to sign in.", user.Email))
	return nil
}

// Login prompts for credentials and replaces the current session on success.
// A failed attempt leaves any existing session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	sess, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s. Balance: %d points",
		displayName(sess.User.Name, sess.User.Email), sess.User.Points))
	return nil
}

// Logout forgets the session locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the cached profile without contacting the server.
func (a *App) WhoAmI(ctx context.Context) error {
	profile, ok := a.authService.Profile()
	if !ok {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>, %d points (as of last login)", profile.Name, profile.Email, profile.Points))
	return nil
}

// Points fetches the balance from the server.
func (a *App) Points(ctx context.Context) error {
	p, err := a.authService.Points(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Balance: %d points", p))
	return nil
}

func displayName(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
