package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/session"
	"github.com/thenoetrevino/todoboard/internal/tui/alert"
	"github.com/thenoetrevino/todoboard/internal/tui/board"
	"github.com/thenoetrevino/todoboard/internal/tui/login"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
	"github.com/thenoetrevino/todoboard/internal/tui/userinfo"
)

// Deps are the collaborators the session flow is built with.
type Deps struct {
	Store   session.Store
	Gateway gateway.Gateway

	// Auth enables username/password login; when nil the login form only
	// accepts a pasted token
	Auth gateway.Authenticator

	// DefaultUsername prefills the login form
	DefaultUsername string

	Logger  *slog.Logger
	Metrics *gateway.Metrics
}

// Model represents the application state for the TUI.
//
// Update is the only writer of any field reachable from Model. Store and
// gateway calls run inside commands and report back with messages tagged
// by the cycle generation that issued them.
type Model struct {
	Ctx    context.Context
	Config *config.Config

	store   session.Store
	gateway gateway.Gateway
	auth    gateway.Authenticator
	logger  *slog.Logger
	metrics *gateway.Metrics

	defaultUsername string

	Flow   *state.FlowState
	Errors *state.ErrorState
	UI     *state.UIState
	Board  *board.Renderer

	login    *login.Model
	userInfo *userinfo.Model
	alert    *alert.Model
	spinner  spinner.Model
}

// InitialModel creates the TUI model in the Unchecked phase.
func InitialModel(ctx context.Context, cfg *config.Config, deps Deps) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = gateway.NewMetrics()
	}

	return Model{
		Ctx:     ctx,
		Config:  cfg,
		store:   deps.Store,
		gateway: deps.Gateway,
		auth:    deps.Auth,
		logger:  logger,
		metrics: metrics,
		Flow:    state.NewFlowState(),

		defaultUsername: deps.DefaultUsername,
		Errors:          state.NewErrorState(),
		UI:              state.NewUIState(),
		Board:           board.NewRenderer(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Busy))),
		),
	}
}

// Login returns the login form while the flow is logged out.
func (m Model) Login() *login.Model {
	return m.login
}

// UserInfo returns the user-info modal while it is open.
func (m Model) UserInfo() *userinfo.Model {
	return m.userInfo
}

// Alert returns the error alert while it is shown.
func (m Model) Alert() *alert.Model {
	return m.alert
}

// Metrics returns the counters shared with the gateway.
func (m Model) Metrics() *gateway.Metrics {
	return m.metrics
}

// Shutdown cancels any work still in flight.
func (m Model) Shutdown() {
	m.Flow.Invalidate()
}
