package app

import (
	"log/slog"

	"github.com/thenoetrevino/todoboard/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger    *slog.Logger
	store     session.Store
	dataDir   string
	ephemeral bool
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStore uses store instead of opening the session database
func WithStore(store session.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithDataDir sets where the session database lives
func WithDataDir(dir string) Option {
	return func(cfg *appConfig) {
		cfg.dataDir = dir
	}
}

// WithEphemeral keeps the credential in memory only
func WithEphemeral() Option {
	return func(cfg *appConfig) {
		cfg.ephemeral = true
	}
}
