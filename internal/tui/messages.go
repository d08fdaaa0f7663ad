package tui

import (
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/session"
)

// Results of store and gateway commands. Each carries the generation of
// the cycle that issued it so results from a superseded cycle are dropped.

type credentialLoadedMsg struct {
	gen        uint64
	credential session.Credential
	found      bool
	err        error
}

type credentialSavedMsg struct {
	gen uint64
	err error
}

type credentialClearedMsg struct {
	gen uint64
	err error
}

type identityFetchedMsg struct {
	gen  uint64
	user *models.UserInfo
	err  error
}

type boardFetchedMsg struct {
	gen   uint64
	board *models.Board
	err   error
}
