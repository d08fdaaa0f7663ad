package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/session"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// fakeGateway records every fetch and returns canned results
type fakeGateway struct {
	mu sync.Mutex

	user     *models.UserInfo
	userErr  error
	board    *models.Board
	boardErr error

	identityCalls []session.Credential
	boardCalls    []session.Credential
}

func newFakeGateway(userID string, columnIDs ...string) *fakeGateway {
	cols := make([]models.Column, len(columnIDs))
	for i, id := range columnIDs {
		cols[i] = models.Column{ID: types.ColumnID(id), Title: "Column " + id}
	}
	return &fakeGateway{
		user:  &models.UserInfo{ID: types.UserID(userID), Name: "User " + userID},
		board: &models.Board{Columns: cols},
	}
}

func (g *fakeGateway) FetchIdentity(_ context.Context, cred session.Credential) (*models.UserInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.identityCalls = append(g.identityCalls, cred)
	if g.userErr != nil {
		return nil, g.userErr
	}
	return g.user, nil
}

func (g *fakeGateway) FetchBoard(_ context.Context, cred session.Credential) (*models.Board, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.boardCalls = append(g.boardCalls, cred)
	if g.boardErr != nil {
		return nil, g.boardErr
	}
	return g.board, nil
}

func (g *fakeGateway) setUserErr(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.userErr = err
}

func (g *fakeGateway) setBoardErr(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.boardErr = err
}

// switchUser makes later fetches return a different account and board
func (g *fakeGateway) switchUser(userID string, columnIDs ...string) {
	next := newFakeGateway(userID, columnIDs...)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.user, g.board = next.user, next.board
}

func (g *fakeGateway) calls() (identity, board []session.Credential) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]session.Credential(nil), g.identityCalls...), append([]session.Credential(nil), g.boardCalls...)
}

// recordingStore counts store calls on top of an in-memory store
type recordingStore struct {
	*session.MemoryStore

	mu      sync.Mutex
	loads   int
	saves   []session.Credential
	clears  int
	loadErr error
}

func newRecordingStore(cred session.Credential) *recordingStore {
	return &recordingStore{MemoryStore: session.NewMemoryStore(cred)}
}

func (s *recordingStore) Load(ctx context.Context) (session.Credential, bool, error) {
	s.mu.Lock()
	s.loads++
	err := s.loadErr
	s.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return s.MemoryStore.Load(ctx)
}

func (s *recordingStore) Save(ctx context.Context, cred session.Credential) error {
	s.mu.Lock()
	s.saves = append(s.saves, cred)
	s.mu.Unlock()
	return s.MemoryStore.Save(ctx, cred)
}

func (s *recordingStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.clears++
	s.mu.Unlock()
	return s.MemoryStore.Clear(ctx)
}

func (s *recordingStore) counts() (loads, clears int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads, s.clears
}

var errBoom = errors.New("boom")

// newTestModel builds a model wired to the given fakes with a sized terminal
func newTestModel(t *testing.T, store session.Store, gw gateway.Gateway) Model {
	t.Helper()
	m := InitialModel(context.Background(), config.Default(), Deps{
		Store:   store,
		Gateway: gw,
		Logger:  logging.Discard(),
	})
	t.Cleanup(m.Shutdown)
	return UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updatedModel, cmd := m.Update(msg)
	return updatedModel.(Model), cmd
}

// runCmd executes cmd and returns the flow messages it produced, expanding
// batches. Spinner ticks are dropped and commands that block (cursor
// blinks) are abandoned after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(50 * time.Millisecond):
		return nil
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	case credentialLoadedMsg, credentialSavedMsg, credentialClearedMsg,
		identityFetchedMsg, boardFetchedMsg, events.Event, tea.QuitMsg:
		return []tea.Msg{msg}
	}
	return nil
}

// settle feeds cmd's messages back through Update until the flow is idle
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := runCmd(cmd)
	for i := 0; len(queue) > 0; i++ {
		if i > 100 {
			t.Fatal("flow did not settle")
		}
		msg := queue[0]
		queue = queue[1:]

		var next tea.Cmd
		m, next = update(m, msg)
		queue = append(queue, runCmd(next)...)
	}
	return m
}

// start runs activation through to the first idle phase
func start(t *testing.T, m Model) Model {
	t.Helper()
	return settle(t, m, m.Init())
}

// pressKey sends a printable key and settles whatever it triggers
func pressKey(t *testing.T, m Model, r rune) Model {
	t.Helper()
	m, cmd := update(m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	return settle(t, m, cmd)
}

// pressSpecial sends a special key (enter, esc) and settles whatever it triggers
func pressSpecial(t *testing.T, m Model, code rune) Model {
	t.Helper()
	m, cmd := update(m, tea.KeyPressMsg(tea.Key{Code: code}))
	return settle(t, m, cmd)
}

// send delivers msg and settles whatever it triggers
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := update(m, msg)
	return settle(t, m, cmd)
}

func sessionCred(s string) session.Credential {
	return session.Credential(s)
}
