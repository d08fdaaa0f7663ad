package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
)

// RenderCard renders a single card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Card Title}        ┃
//	┃ {contents preview}  ┃
//	┃ by {author}         ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// Cards written by the signed-in user are attributed to "you".
func RenderCard(card models.Card, user *models.UserInfo, selected bool) string {
	bg := theme.CardBg
	if selected {
		bg = theme.SelectedBg
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))

	title := base.Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Render(truncate(card.Title, cardTitleMaxLength))

	body := base.Foreground(lipgloss.Color(theme.Subtle)).
		Render(truncate(firstLine(card.Contents), cardBodyMaxLength))

	label := authorLabel(card.Author, user)
	authorColor := theme.Subtle
	if label == "you" {
		authorColor = theme.OwnCard
	}
	author := base.Italic(true).
		Foreground(lipgloss.Color(authorColor)).
		Render("by " + label)

	style := CardStyle.BorderBackground(lipgloss.Color(bg)).Background(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, author))
}

// authorLabel names the author, using "you" for the signed-in user
func authorLabel(author string, user *models.UserInfo) string {
	if author == "" {
		return "unknown"
	}
	if user != nil && (author == user.Name || author == user.ID.String()) {
		return "you"
	}
	return author
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate shortens s to max runes, marking the cut with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
