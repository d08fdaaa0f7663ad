package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/session"
)

func loadCredentialCmd(ctx context.Context, store session.Store, gen uint64) tea.Cmd {
	return func() tea.Msg {
		cred, found, err := store.Load(ctx)
		return credentialLoadedMsg{gen: gen, credential: cred, found: found, err: err}
	}
}

func saveCredentialCmd(ctx context.Context, store session.Store, gen uint64, cred session.Credential) tea.Cmd {
	return func() tea.Msg {
		return credentialSavedMsg{gen: gen, err: store.Save(ctx, cred)}
	}
}

func clearCredentialCmd(ctx context.Context, store session.Store, gen uint64) tea.Cmd {
	return func() tea.Msg {
		return credentialClearedMsg{gen: gen, err: store.Clear(ctx)}
	}
}

func fetchIdentityCmd(ctx context.Context, gw gateway.Gateway, gen uint64, cred session.Credential) tea.Cmd {
	return func() tea.Msg {
		user, err := gw.FetchIdentity(ctx, cred)
		return identityFetchedMsg{gen: gen, user: user, err: err}
	}
}

func fetchBoardCmd(ctx context.Context, gw gateway.Gateway, gen uint64, cred session.Credential) tea.Cmd {
	return func() tea.Msg {
		board, err := gw.FetchBoard(ctx, cred)
		return boardFetchedMsg{gen: gen, board: board, err: err}
	}
}
