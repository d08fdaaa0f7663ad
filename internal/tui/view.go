package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/tui/layers"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UI.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

func (m Model) render() string {
	width, height := m.UI.Width(), m.UI.Height()

	// Login is full-screen: nothing of a previous session shows behind it
	if m.Flow.Phase() == state.LoggedOut && m.login != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.login.View())
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.boardView(),
		"",
		m.statusBar(),
	)

	var overlay *lipgloss.Layer
	switch {
	case m.alert != nil:
		overlay = layers.CreateCenteredLayer(m.alert.View(), width, height)
	case m.userInfo != nil:
		overlay = layers.CreateCenteredLayer(m.userInfo.View(), width, height)
	}

	return layers.Compose(base, overlay)
}

func (m Model) boardView() string {
	contentHeight := m.UI.ContentHeight()

	if m.Board.RenderCount() == 0 {
		msg := "Loading board..."
		if m.Flow.Phase() == state.FetchError {
			msg = "The board is not available"
		}
		return lipgloss.Place(m.UI.Width(), contentHeight, lipgloss.Center, lipgloss.Center,
			components.SubtleStyle.Render(msg))
	}

	return m.Board.View(m.UI.ViewportOffset(), m.UI.ViewportSize(), contentHeight)
}

func (m Model) statusBar() string {
	keys := m.Config.KeyMappings
	hints := fmt.Sprintf("%s: quit", keys.Quit)
	if m.settled() {
		hints = fmt.Sprintf("%s: account  %s: refresh  %s: quit", keys.UserInfo, keys.Refresh, keys.Quit)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UI.Width(),
		User:  m.Flow.User().DisplayName(),
		State: m.statusText(),
		Hints: hints,
	})
}

func (m Model) statusText() string {
	phase := m.Flow.Phase()
	switch {
	case phase.Busy():
		return m.spinner.View() + " " + phaseLabel(phase)
	case phase == state.FetchError && m.Errors.HasError():
		return components.ErrorTextStyle.Render(m.Errors.Get())
	case phase == state.Rendered:
		return fmt.Sprintf("%d columns", len(m.Board.IDs()))
	default:
		return ""
	}
}

func phaseLabel(p state.Phase) string {
	switch p {
	case state.CheckingCredential:
		return "Checking session"
	case state.FetchingUser:
		return "Loading profile"
	case state.FetchingColumns:
		return "Loading board"
	default:
		return p.String()
	}
}
