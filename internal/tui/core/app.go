package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App whose session flow is wired to the container's
// store and gateway client. username prefills the login form.
func New(ctx context.Context, container *app.App, cfg *config.Config, username string) *App {
	model := tui.InitialModel(ctx, cfg, tui.Deps{
		Store:   container.Store,
		Gateway: container.Client,
		Auth:    container.Client,

		DefaultUsername: username,
		Logger:          container.Logger,
		Metrics:         container.Metrics,
	})
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	// Unwrap the updated Model and store it back
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return a.model.View()
}

// Shutdown cancels any fetch still in flight.
func (a *App) Shutdown() {
	a.model.Shutdown()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
