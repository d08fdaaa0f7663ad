package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/tui/alert"
	"github.com/thenoetrevino/todoboard/internal/tui/login"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
	"github.com/thenoetrevino/todoboard/internal/tui/userinfo"
)

// startCheck begins a new cycle by reading the stored credential.
// Whatever the previous cycle still had in flight becomes stale.
func (m *Model) startCheck() tea.Cmd {
	ctx, gen := m.Flow.BeginCycle(m.Ctx)
	m.logger.Debug("checking credential", "generation", gen)
	return tea.Batch(loadCredentialCmd(ctx, m.store, gen), m.spinner.Tick)
}

// stale reports whether a result belongs to a superseded cycle
func (m *Model) stale(gen uint64, result string) bool {
	if m.Flow.IsCurrent(gen) {
		return false
	}
	m.metrics.IncSuperseded()
	m.logger.Debug("dropping superseded result",
		"result", result,
		"generation", gen,
		"current", m.Flow.Generation())
	return true
}

func (m *Model) handleCredentialLoaded(msg credentialLoadedMsg) tea.Cmd {
	if m.stale(msg.gen, "credential") {
		return nil
	}
	if msg.err != nil {
		m.logger.Warn("could not read stored credential, treating as signed out", "error", msg.err)
	}
	if msg.err != nil || !msg.found || msg.credential == "" {
		return m.enterLoggedOut("")
	}

	m.Flow.SetCredential(msg.credential)
	return m.enterFetchingUser()
}

func (m *Model) enterLoggedOut(errText string) tea.Cmd {
	m.Flow.SetPhase(state.LoggedOut)
	m.Flow.ClearUser()
	m.Errors.Clear()
	m.alert = nil
	m.userInfo = nil

	m.login = login.New(m.Flow.Context(), m.auth)
	m.login.Prefill(m.defaultUsername)
	if errText != "" {
		m.login.SetError(errText)
	}
	m.UI.SetMode(state.LoginMode)
	m.logger.Info("no stored session, showing login")
	return m.login.Init()
}

func (m *Model) enterFetchingUser() tea.Cmd {
	m.Flow.SetPhase(state.FetchingUser)
	return fetchIdentityCmd(m.Flow.Context(), m.gateway, m.Flow.Generation(), m.Flow.Credential())
}

func (m *Model) enterFetchingColumns() tea.Cmd {
	m.Flow.SetPhase(state.FetchingColumns)
	return fetchBoardCmd(m.Flow.Context(), m.gateway, m.Flow.Generation(), m.Flow.Credential())
}

func (m *Model) handleIdentityFetched(msg identityFetchedMsg) tea.Cmd {
	if m.stale(msg.gen, "identity") {
		return nil
	}
	if msg.err != nil {
		return m.fail(state.FetchingUser, msg.err)
	}

	m.Flow.SetUser(msg.user)
	m.logger.Debug("identity fetched", "user", msg.user.DisplayName())
	return m.enterFetchingColumns()
}

func (m *Model) handleBoardFetched(msg boardFetchedMsg) tea.Cmd {
	if m.stale(msg.gen, "board") {
		return nil
	}
	if msg.err != nil {
		return m.fail(state.FetchingColumns, msg.err)
	}

	m.Flow.SetPhase(state.Rendered)
	m.Errors.Clear()
	m.alert = nil
	m.UI.SetMode(state.NormalMode)

	m.Board.Render(msg.board, m.Flow.User())
	m.UI.ResetViewport()
	m.logger.Info("board rendered",
		"columns", len(m.Board.IDs()),
		"generation", msg.gen)
	return nil
}

// fail moves to FetchError and raises the alert for a failed stage
func (m *Model) fail(stage state.Phase, err error) tea.Cmd {
	fe := gateway.Classify(err)
	if fe.Kind == gateway.KindCanceled {
		m.logger.Debug("fetch canceled", "stage", stage.String())
		return nil
	}

	m.logger.Warn("fetch failed",
		"stage", stage.String(),
		"kind", fe.Kind.String(),
		"status", fe.Status,
		"error", err)

	m.Flow.SetPhase(state.FetchError)
	m.Errors.Set(stage, fe.Error())
	m.userInfo = nil
	m.alert = alert.New(fe.Error(), m.Config.KeyMappings.Retry, m.Config.KeyMappings.Dismiss)
	m.UI.SetMode(state.AlertMode)
	return nil
}

func (m *Model) handleAlertResolved(msg events.AlertResolved) tea.Cmd {
	if m.Flow.Phase() != state.FetchError || m.alert == nil {
		return nil
	}
	m.alert = nil
	m.UI.SetMode(state.NormalMode)

	switch msg.Action {
	case events.AlertRetry:
		failed := m.Errors.Failed()
		m.Errors.Clear()
		m.logger.Info("retrying fetch", "stage", failed.String())
		if failed == state.FetchingUser {
			return tea.Batch(m.enterFetchingUser(), m.spinner.Tick)
		}
		return tea.Batch(m.enterFetchingColumns(), m.spinner.Tick)
	default:
		m.Errors.Dismiss()
		return nil
	}
}

func (m *Model) handleLoginSucceeded(msg events.LoginSucceeded) tea.Cmd {
	if m.Flow.Phase() != state.LoggedOut {
		m.logger.Debug("ignoring login outside the login flow", "phase", m.Flow.Phase().String())
		return nil
	}
	if msg.Token == "" {
		if m.login != nil {
			m.login.SetError("The server returned an empty token")
		}
		return nil
	}
	return saveCredentialCmd(m.Flow.Context(), m.store, m.Flow.Generation(), msg.Token)
}

func (m *Model) handleCredentialSaved(msg credentialSavedMsg) tea.Cmd {
	if m.stale(msg.gen, "save") {
		return nil
	}
	if msg.err != nil {
		m.logger.Error("could not store credential", "error", msg.err)
		if m.login != nil {
			m.login.SetError("Could not store the session: " + msg.err.Error())
		}
		return nil
	}
	m.logger.Info("signed in")
	m.login = nil
	m.UI.SetMode(state.NormalMode)
	return m.startCheck()
}

func (m *Model) handleSignOut() tea.Cmd {
	if m.Flow.Phase() == state.LoggedOut {
		return nil
	}
	m.logger.Info("signing out")

	// Anything still in flight belongs to the session being signed out
	m.Flow.Invalidate()
	m.Flow.SetPhase(state.Unchecked)
	m.Flow.ClearUser()
	m.Errors.Clear()
	m.userInfo = nil
	m.alert = nil
	m.Board.Reset()
	m.UI.ResetViewport()
	m.UI.SetMode(state.NormalMode)

	return clearCredentialCmd(m.Ctx, m.store, m.Flow.Generation())
}

func (m *Model) handleCredentialCleared(msg credentialClearedMsg) tea.Cmd {
	if m.stale(msg.gen, "clear") {
		return nil
	}
	if msg.err != nil {
		m.logger.Error("could not clear stored credential", "error", msg.err)
		m.Flow.BeginCycle(m.Ctx)
		return m.enterLoggedOut("Could not clear the stored session: " + msg.err.Error())
	}
	return m.startCheck()
}

// openUserInfo opens the modal even without an identity so sign-out stays
// reachable after an identity fetch fails
func (m *Model) openUserInfo() {
	m.userInfo = userinfo.New(m.Flow.User(), &m.Config.KeyMappings)
	m.UI.SetMode(state.UserInfoMode)
}

func (m *Model) closeUserInfo() {
	m.userInfo = nil
	if m.UI.Mode() == state.UserInfoMode {
		m.UI.SetMode(state.NormalMode)
	}
}
