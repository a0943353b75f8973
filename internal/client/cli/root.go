package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/videogenius/internal/client/client"
)

func (a *App) getStatus() string {
	profile, ok := a.authService.Profile()
	if !ok {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", profile.Email)
}

// Root greets the user, revalidates any persisted session and runs the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to VideoGenius CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// restoreSession loads the persisted session and checks it with the server.
// A credential the server rejects is forgotten; a server that cannot be
// reached leaves the session in place.
func (a *App) restoreSession(ctx context.Context) {
	token, ok, err := a.authService.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot restore session", "error", err)
		return
	}
	if !ok {
		return
	}

	user, err := a.authService.Revalidate(ctx, token)
	switch {
	case err == nil:
		printlnFn(fmt.Sprintf("Welcome back, %s. Balance: %d points", displayName(user.Name, user.Email), user.Points))
	case errors.Is(err, client.ErrNetwork):
		printlnFn("Server unreachable, the saved session was kept:", client.Message(err))
	default:
		printlnFn("Saved session is no longer valid, please log in again:", client.Message(err))
		if err := a.authService.Logout(ctx); err != nil {
			a.log.Warn(ctx, "cannot clear session", "error", err)
		}
	}
}
