// Package login is the sign-in flow shown while no credential is stored.
// It reports success with events.LoginSucceeded carrying the credential.
package login

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/session"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
)

// Field indexes for focus cycling
const (
	fieldUsername = iota
	fieldPassword
	fieldToken
)

// failedMsg is returned by the submit command when the server rejects the login
type failedMsg struct {
	err error
}

// Model is the login form.
type Model struct {
	ctx  context.Context
	auth gateway.Authenticator

	username textinput.Model
	password textinput.Model
	token    textinput.Model

	// tokenMode switches the form to pasting an existing token
	tokenMode  bool
	focus      int
	submitting bool
	err        string
}

// New creates the login form. auth may be nil, in which case only token
// entry is offered.
func New(ctx context.Context, auth gateway.Authenticator) *Model {
	username := textinput.New()
	username.Placeholder = "username"

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	token := textinput.New()
	token.Placeholder = "paste a session token"
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'

	m := &Model{
		ctx:      ctx,
		auth:     auth,
		username: username,
		password: password,
		token:    token,
		focus:    fieldUsername,
	}
	if auth == nil {
		m.tokenMode = true
		m.focus = fieldToken
	}
	return m
}

// Init focuses the first field
func (m *Model) Init() tea.Cmd {
	return m.focusCurrent()
}

// Prefill sets the username field; focus moves to the password
// when a name was given
func (m *Model) Prefill(name string) {
	name = strings.TrimSpace(name)
	if name == "" || m.tokenMode {
		return
	}
	m.username.SetValue(name)
	m.focus = fieldPassword
}

// Submitting reports whether a login request is in flight
func (m *Model) Submitting() bool {
	return m.submitting
}

// ErrorMessage returns the inline error, empty when there is none
func (m *Model) ErrorMessage() string {
	return m.err
}

// SetError shows msg under the form and re-enables input
func (m *Model) SetError(msg string) {
	m.err = msg
	m.submitting = false
}

// Update handles input for the form
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case failedMsg:
		m.SetError(describe(msg.err))
		return nil

	case tea.KeyPressMsg:
		if m.submitting {
			return nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.cycleFocus(1)
		case "shift+tab", "up":
			return m.cycleFocus(-1)
		case "ctrl+t":
			if m.auth == nil {
				return nil
			}
			m.tokenMode = !m.tokenMode
			m.err = ""
			if m.tokenMode {
				m.focus = fieldToken
			} else {
				m.focus = fieldUsername
			}
			return m.focusCurrent()
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldUsername:
		m.username, cmd = m.username.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	case fieldToken:
		m.token, cmd = m.token.Update(msg)
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	if m.tokenMode {
		tok := strings.TrimSpace(m.token.Value())
		if tok == "" {
			m.err = "Token is required"
			return nil
		}
		m.err = ""
		return func() tea.Msg {
			return events.LoginSucceeded{Token: session.Credential(tok)}
		}
	}

	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	// Enter on the username field moves on instead of submitting half a form
	if m.focus == fieldUsername && username != "" && password == "" {
		return m.cycleFocus(1)
	}
	if username == "" || password == "" {
		m.err = "Username and password are required"
		return nil
	}

	m.err = ""
	m.submitting = true
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		token, err := auth.Login(ctx, username, password)
		if err != nil {
			return failedMsg{err: err}
		}
		return events.LoginSucceeded{Token: token}
	}
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	if m.tokenMode {
		return nil
	}
	m.focus = (m.focus + delta + 2) % 2
	return m.focusCurrent()
}

func (m *Model) focusCurrent() tea.Cmd {
	m.username.Blur()
	m.password.Blur()
	m.token.Blur()
	switch m.focus {
	case fieldPassword:
		return m.password.Focus()
	case fieldToken:
		return m.token.Focus()
	default:
		return m.username.Focus()
	}
}

// View renders the form inside a modal box
func (m *Model) View() string {
	var rows []string
	rows = append(rows, components.TitleStyle.Render("Sign in to todoboard"), "")

	if m.tokenMode {
		rows = append(rows, "Token", m.token.View())
	} else {
		rows = append(rows, "Username", m.username.View(), "", "Password", m.password.View())
	}

	rows = append(rows, "")
	switch {
	case m.submitting:
		rows = append(rows, components.SubtleStyle.Render("Signing in..."))
	case m.err != "":
		rows = append(rows, components.ErrorTextStyle.Render(m.err))
	}

	hints := "enter: sign in  tab: next field"
	if m.auth != nil {
		hints += "  ctrl+t: use token"
	}
	if m.tokenMode {
		hints = "enter: use token"
		if m.auth != nil {
			hints += "  ctrl+t: use password"
		}
	}
	rows = append(rows, components.SubtleStyle.Render(hints))

	return components.ModalBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// describe turns a login failure into the inline error text
func describe(err error) string {
	return gateway.Classify(err).Error()
}
