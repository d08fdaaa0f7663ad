// Package userinfo is the modal that shows the signed-in user and offers
// sign-out.
package userinfo

import (
	"fmt"
	"strings"
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
)

const cardWidth = 48

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Model is the user-info modal.
type Model struct {
	user *models.UserInfo
	keys *config.KeyMappings
}

// New creates the modal for user.
func New(user *models.UserInfo, keys *config.KeyMappings) *Model {
	return &Model{user: user, keys: keys}
}

// User returns the identity shown by the modal
func (m *Model) User() *models.UserInfo {
	return m.user
}

// Update maps keys to modal outcomes
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case m.keys.SignOut:
		return emit(events.SignOutRequested{})
	case "esc", m.keys.UserInfo, m.keys.Quit:
		return emit(events.UserInfoClosed{})
	}
	return nil
}

// View renders the identity card and the available actions
func (m *Model) View() string {
	body := Markdown(m.user)
	if renderer, err := getRenderer(cardWidth); err == nil {
		if rendered, err := renderer.Render(body); err == nil {
			body = strings.TrimSpace(rendered)
		}
	}

	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		components.ActiveButtonStyle.Render(fmt.Sprintf("[%s] Sign out", m.keys.SignOut)),
		components.ButtonStyle.Render("[esc] Close"),
	)

	title := "Signed in"
	if m.user == nil {
		title = "Session"
	}
	return components.ModalBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		body,
		"",
		actions,
	))
}

// Markdown describes user as a short markdown document
func Markdown(user *models.UserInfo) string {
	if user == nil {
		return "_Unknown user_"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", user.DisplayName())
	fmt.Fprintf(&b, "- **ID:** `%s`\n", user.ID)
	if user.Email != "" {
		fmt.Fprintf(&b, "- **Email:** %s\n", user.Email)
	}
	if user.AvatarURL != "" {
		fmt.Fprintf(&b, "- **Avatar:** %s\n", user.AvatarURL)
	}
	return b.String()
}

func emit(e events.Event) tea.Cmd {
	return func() tea.Msg { return e }
}
