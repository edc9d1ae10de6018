package app

import (
	"context"

	"log/slog"

	"github.com/sellora/storefront-manager/config"
	httpapi "github.com/sellora/storefront-manager/internal/api/http"
	"github.com/sellora/storefront-manager/internal/apisrv/admin"
	"github.com/sellora/storefront-manager/internal/apisrv/auth"
	"github.com/sellora/storefront-manager/internal/dependency"
	"github.com/sellora/storefront-manager/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting storefront manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	authS, err := auth.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	adminS := admin.New(a.db)

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, adminS, authS, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
