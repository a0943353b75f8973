package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/videogenius/internal/client/client"
	"github.com/dmitrijs2005/videogenius/internal/client/config"
	"github.com/dmitrijs2005/videogenius/internal/client/repositories/session"
	"github.com/dmitrijs2005/videogenius/internal/client/services"
	"github.com/dmitrijs2005/videogenius/internal/client/store"
	"github.com/dmitrijs2005/videogenius/internal/filex"
	"github.com/dmitrijs2005/videogenius/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	genService  services.GenerationService
	log         logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp wires the session database, the API client and both services
// according to c.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log, err := logging.New(c.LogFormat, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DBPath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithTextEncoding(client.TextEncoding(c.TextEncoding)),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	st := store.NewSessionStore(session.NewSQLiteRepository(db))

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, st, log),
		genService:  services.NewGenerationService(apiClient, log),
		log:         log,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the previous session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

// Close releases the API client and the session database.
func (a *App) Close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.authService.CurrentCredential()
	return ok
}
