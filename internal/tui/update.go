package tui

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// Init starts the first credential check.
func (m Model) Init() tea.Cmd {
	return m.startCheck()
}

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UI.SetWidth(msg.Width)
		m.UI.SetHeight(msg.Height)
		m.UI.EnsureSelectionVisible(m.Board.SelectedColumn())
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain die once nothing is loading
		if !m.Flow.Phase().Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case credentialLoadedMsg:
		return m, m.handleCredentialLoaded(msg)
	case credentialSavedMsg:
		return m, m.handleCredentialSaved(msg)
	case credentialClearedMsg:
		return m, m.handleCredentialCleared(msg)
	case identityFetchedMsg:
		return m, m.handleIdentityFetched(msg)
	case boardFetchedMsg:
		return m, m.handleBoardFetched(msg)

	case events.LoginSucceeded:
		return m, m.handleLoginSucceeded(msg)
	case events.SignOutRequested:
		return m, m.handleSignOut()
	case events.UserInfoClosed:
		m.closeUserInfo()
		return m, nil
	case events.AlertResolved:
		return m, m.handleAlertResolved(msg)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	// Cursor blinks and login results belong to the login form
	if m.UI.Mode() == state.LoginMode && m.login != nil {
		return m, m.login.Update(msg)
	}
	return m, nil
}

// handleKey routes a key press to whichever surface owns the keyboard
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.UI.Mode() {
	case state.LoginMode:
		if m.login != nil {
			return m.login.Update(msg)
		}
	case state.UserInfoMode:
		if m.userInfo != nil {
			return m.userInfo.Update(msg)
		}
	case state.AlertMode:
		if m.alert != nil {
			return m.alert.Update(msg)
		}
	}

	return m.handleNormalKey(msg)
}

// handleNormalKey handles board keys
func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	keys := m.Config.KeyMappings
	settled := m.settled()

	switch msg.String() {
	case keys.Quit:
		return tea.Quit

	case keys.Refresh:
		if !settled {
			return nil
		}
		m.logger.Info("re-checking session")
		m.Errors.Clear()
		m.alert = nil
		return m.startCheck()

	case keys.UserInfo:
		if settled {
			m.openUserInfo()
		}
		return nil

	case keys.PrevColumn, "left":
		m.Board.MoveColumn(-1)
	case keys.NextColumn, "right":
		m.Board.MoveColumn(1)
	case keys.PrevCard, "up":
		m.Board.MoveCard(-1)
	case keys.NextCard, "down":
		m.Board.MoveCard(1)
	default:
		return nil
	}

	m.UI.EnsureSelectionVisible(m.Board.SelectedColumn())
	return nil
}

// settled reports whether no stage is running, so refresh and the
// account modal are available
func (m Model) settled() bool {
	phase := m.Flow.Phase()
	return phase == state.Rendered || phase == state.FetchError
}
