package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/database"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/session"
)

// App holds the session flow's collaborators and provides dependency injection.
// This is the main application container that manages their lifecycles.
type App struct {
	// db backs the credential store; nil for ephemeral runs
	db *sql.DB

	Store   session.Store
	Client  *gateway.Client
	Metrics *gateway.Metrics
	Logger  *slog.Logger
}

// New creates a new App with all collaborators initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		Metrics: gateway.NewMetrics(),
		Logger:  ac.logger,
	}

	switch {
	case ac.store != nil:
		a.Store = ac.store
	case ac.ephemeral:
		a.Store = session.NewMemoryStore("")
	default:
		dataDir := ac.dataDir
		if dataDir == "" {
			dir, err := config.DataDir()
			if err != nil {
				return nil, err
			}
			dataDir = dir
		}
		db, err := database.InitDB(ctx, dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening session database: %w", err)
		}
		a.db = db
		a.Store = session.NewSQLiteStore(db)
	}

	a.Client = gateway.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout,
		gateway.WithLogger(ac.logger),
		gateway.WithMetrics(a.Metrics),
	)

	return a, nil
}

// Close releases the session database and logs the request counters.
func (a *App) Close() error {
	snap := a.Metrics.GetSnapshot()
	a.Logger.Info("gateway metrics",
		"requests", snap.Requests,
		"failures", snap.Failures,
		"unauthorized", snap.Unauthorized,
		"superseded", snap.Superseded,
		"uptime", snap.Uptime)

	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
