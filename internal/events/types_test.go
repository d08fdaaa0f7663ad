package events

import "testing"

func TestEventTypes(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  EventType
	}{
		{"login", LoginSucceeded{Token: "abc"}, EventLoginSucceeded},
		{"sign out", SignOutRequested{}, EventSignOutRequested},
		{"user info closed", UserInfoClosed{}, EventUserInfoClosed},
		{"alert", AlertResolved{Action: AlertRetry}, EventAlertResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Type(); got != tt.want {
				t.Errorf("Type() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlertAction_String(t *testing.T) {
	if AlertRetry.String() != "retry" {
		t.Errorf("AlertRetry.String() = %q", AlertRetry.String())
	}
	if AlertDismiss.String() != "dismiss" {
		t.Errorf("AlertDismiss.String() = %q", AlertDismiss.String())
	}
	if AlertAction(42).String() != "unknown" {
		t.Errorf("unknown action should stringify as 'unknown'")
	}
}
