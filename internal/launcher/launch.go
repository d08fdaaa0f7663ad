// Package launcher wires configuration, logging, the app container and the
// Bubble Tea program together for the interactive client.
package launcher

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/tui/core"
	"github.com/thenoetrevino/todoboard/internal/user"
)

// Options are the command-line overrides for a launch
type Options struct {
	// Server overrides the configured board server URL
	Server string

	// DataDir holds the session database and logs
	DataDir string

	// Ephemeral keeps the session in memory only
	Ephemeral bool
}

// Launch starts the TUI application and blocks until it exits
func Launch(ctx context.Context, opts Options) error {
	cfg, opts, err := resolve(opts)
	if err != nil {
		return err
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init(opts.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	appOpts := []app.Option{
		app.WithLogger(logging.Logger),
		app.WithDataDir(opts.DataDir),
	}
	if opts.Ephemeral {
		appOpts = append(appOpts, app.WithEphemeral())
	}

	application, err := app.New(ctx, cfg, appOpts...)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logging.Logger.Error("error closing app", "error", err)
		}
	}()

	components.InitStyles(cfg.ColorScheme)
	logging.Logger.Info("starting todoboard",
		"server", cfg.Server.BaseURL,
		"ephemeral", opts.Ephemeral)

	tuiApp := core.New(ctx, application, cfg, user.LoginName())
	defer tuiApp.Shutdown()

	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// resolve loads the configuration and applies the command-line overrides
func resolve(opts Options) (*config.Config, Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, opts, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Server != "" {
		cfg.Server.BaseURL = strings.TrimRight(opts.Server, "/")
	}
	if opts.DataDir == "" {
		opts.DataDir, err = config.DataDir()
		if err != nil {
			return nil, opts, err
		}
	}
	return cfg, opts, nil
}
