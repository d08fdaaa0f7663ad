// Package alert is the blocking error dialog shown when a fetch fails.
package alert

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
)

// Model is the error alert. It offers Retry and Dismiss; Retry is the
// default button.
type Model struct {
	title   string
	message string
	retry   string
	dismiss string
	focused events.AlertAction
	width   int
}

// New creates an alert for message.
// retryKey and dismissKey are the configured shortcuts.
func New(message, retryKey, dismissKey string) *Model {
	return &Model{
		title:   "Error",
		message: message,
		retry:   retryKey,
		dismiss: dismissKey,
		focused: events.AlertRetry,
		width:   50,
	}
}

// Message returns the text shown by the alert
func (m *Model) Message() string {
	return m.message
}

// Update maps keys to alert outcomes
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "left", "right", "tab", "h", "l":
		if m.focused == events.AlertRetry {
			m.focused = events.AlertDismiss
		} else {
			m.focused = events.AlertRetry
		}
		return nil
	case "enter":
		return resolve(m.focused)
	case m.retry:
		return resolve(events.AlertRetry)
	case m.dismiss, "esc":
		return resolve(events.AlertDismiss)
	}
	return nil
}

// View renders the alert box
func (m *Model) View() string {
	retry, dismiss := components.ButtonStyle, components.ButtonStyle
	if m.focused == events.AlertRetry {
		retry = components.ActiveButtonStyle
	} else {
		dismiss = components.ActiveButtonStyle
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		retry.Render("Retry"),
		" ",
		dismiss.Render("Dismiss"),
	)

	return components.ErrorBoxStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		components.ErrorTextStyle.Bold(true).Render(m.title),
		"",
		m.message,
		"",
		buttons,
	))
}

func resolve(action events.AlertAction) tea.Cmd {
	return func() tea.Msg {
		return events.AlertResolved{Action: action}
	}
}
