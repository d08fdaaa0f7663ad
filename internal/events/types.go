// Package events defines the typed outcomes child flows report back to the
// session flow. They are plain values delivered as bubbletea messages.
package events

import "github.com/thenoetrevino/todoboard/internal/session"

// EventType indicates which child flow outcome occurred
type EventType string

const (
	EventLoginSucceeded   EventType = "login_succeeded"
	EventSignOutRequested EventType = "sign_out_requested"
	EventUserInfoClosed   EventType = "user_info_closed"
	EventAlertResolved    EventType = "alert_resolved"
)

// Event is implemented by every child flow outcome
type Event interface {
	Type() EventType
}

// LoginSucceeded is emitted by the login flow with the credential it obtained
type LoginSucceeded struct {
	Token session.Credential
}

func (LoginSucceeded) Type() EventType { return EventLoginSucceeded }

// SignOutRequested is emitted by the user-info modal
type SignOutRequested struct{}

func (SignOutRequested) Type() EventType { return EventSignOutRequested }

// UserInfoClosed is emitted when the user-info modal is closed without signing out
type UserInfoClosed struct{}

func (UserInfoClosed) Type() EventType { return EventUserInfoClosed }

// AlertAction is the choice made on the error alert
type AlertAction int

const (
	AlertRetry AlertAction = iota
	AlertDismiss
)

func (a AlertAction) String() string {
	switch a {
	case AlertRetry:
		return "retry"
	case AlertDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// AlertResolved is emitted by the error alert
type AlertResolved struct {
	Action AlertAction
}

func (AlertResolved) Type() EventType { return EventAlertResolved }

// Compile-time verification that every outcome implements Event
var (
	_ Event = LoginSucceeded{}
	_ Event = SignOutRequested{}
	_ Event = UserInfoClosed{}
	_ Event = AlertResolved{}
)
