package state

import (
	"context"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/session"
)

// FlowState tracks the current check cycle of the session flow.
//
// A cycle starts every time the flow enters CheckingCredential. Each cycle
// gets a new generation and a fresh context; starting a new cycle cancels
// the previous one so its in-flight work can be told apart and dropped.
type FlowState struct {
	phase      Phase
	generation uint64
	credential session.Credential
	user       *models.UserInfo
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewFlowState creates a FlowState in the Unchecked phase.
func NewFlowState() *FlowState {
	return &FlowState{phase: Unchecked}
}

// Phase returns the current phase.
func (s *FlowState) Phase() Phase {
	return s.phase
}

// SetPhase updates the current phase.
func (s *FlowState) SetPhase(p Phase) {
	s.phase = p
}

// Generation returns the generation of the current cycle.
func (s *FlowState) Generation() uint64 {
	return s.generation
}

// BeginCycle cancels the previous cycle, enters CheckingCredential and
// returns the context and generation for the new cycle.
// The credential of the previous cycle is forgotten.
func (s *FlowState) BeginCycle(parent context.Context) (context.Context, uint64) {
	s.Invalidate()
	ctx, cancel := context.WithCancel(parent)
	s.ctx = ctx
	s.cancel = cancel
	s.phase = CheckingCredential
	s.credential = ""
	return ctx, s.generation
}

// Invalidate cancels the current cycle and bumps the generation so any
// result still in flight is treated as stale.
func (s *FlowState) Invalidate() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
}

// Context returns the context of the current cycle.
func (s *FlowState) Context() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// IsCurrent reports whether gen belongs to the current cycle.
func (s *FlowState) IsCurrent(gen uint64) bool {
	return gen == s.generation
}

// Credential returns the credential carried by the current cycle.
func (s *FlowState) Credential() session.Credential {
	return s.credential
}

// SetCredential records the credential read for the current cycle.
func (s *FlowState) SetCredential(c session.Credential) {
	s.credential = c
}

// User returns the identity fetched in the current or most recent cycle.
func (s *FlowState) User() *models.UserInfo {
	return s.user
}

// SetUser replaces the identity wholesale.
func (s *FlowState) SetUser(u *models.UserInfo) {
	s.user = u
}

// ClearUser discards the identity.
func (s *FlowState) ClearUser() {
	s.user = nil
}
