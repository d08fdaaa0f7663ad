package login

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/gateway"
	"github.com/thenoetrevino/todoboard/internal/session"
)

type fakeAuth struct {
	token session.Credential
	err   error
	calls int
	user  string
	pass  string
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (session.Credential, error) {
	f.calls++
	f.user, f.pass = username, password
	return f.token, f.err
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
}

func press(m *Model, code rune) tea.Cmd {
	return m.Update(tea.KeyPressMsg(tea.Key{Code: code}))
}

func TestLogin_Success(t *testing.T) {
	auth := &fakeAuth{token: "tok-1"}
	m := New(context.Background(), auth)
	m.Init()

	typeText(m, "ann")
	press(m, tea.KeyTab)
	typeText(m, "secret")
	cmd := press(m, tea.KeyEnter)

	if cmd == nil {
		t.Fatal("enter should return a submit command")
	}
	if !m.Submitting() {
		t.Error("form should be submitting")
	}

	msg := cmd()
	got, ok := msg.(events.LoginSucceeded)
	if !ok {
		t.Fatalf("submit produced %T, want events.LoginSucceeded", msg)
	}
	if got.Token != "tok-1" {
		t.Errorf("Token = %q, want tok-1", got.Token)
	}
	if auth.user != "ann" || auth.pass != "secret" {
		t.Errorf("Login called with (%q, %q)", auth.user, auth.pass)
	}
}

func TestLogin_FailureShowsInlineError(t *testing.T) {
	auth := &fakeAuth{err: &gateway.FetchError{Kind: gateway.KindUnauthorized, Message: "Incorrect username or password"}}
	m := New(context.Background(), auth)
	m.Init()

	typeText(m, "ann")
	press(m, tea.KeyTab)
	typeText(m, "wrong")
	cmd := press(m, tea.KeyEnter)

	m.Update(cmd())

	if m.Submitting() {
		t.Error("failure should re-enable the form")
	}
	if !strings.Contains(m.ErrorMessage(), "Incorrect username or password") {
		t.Errorf("ErrorMessage() = %q", m.ErrorMessage())
	}
	if !strings.Contains(m.View(), "Incorrect username or password") {
		t.Error("View() should show the error")
	}
}

func TestLogin_EmptyFieldsDoNotSubmit(t *testing.T) {
	auth := &fakeAuth{token: "x"}
	m := New(context.Background(), auth)
	m.Init()

	if cmd := press(m, tea.KeyEnter); cmd != nil {
		t.Error("empty form should not submit")
	}
	if m.ErrorMessage() == "" {
		t.Error("empty form should show an error")
	}
	if auth.calls != 0 {
		t.Errorf("Login called %d times, want 0", auth.calls)
	}
}

func TestLogin_EnterOnUsernameMovesToPassword(t *testing.T) {
	m := New(context.Background(), &fakeAuth{token: "x"})
	m.Init()

	typeText(m, "ann")
	press(m, tea.KeyEnter)

	if m.focus != fieldPassword {
		t.Errorf("focus = %d, want password field", m.focus)
	}
	if m.Submitting() {
		t.Error("should not submit without a password")
	}
}

func TestLogin_TokenMode(t *testing.T) {
	m := New(context.Background(), nil)
	m.Init()

	if !m.tokenMode {
		t.Fatal("form without authenticator should start in token mode")
	}

	typeText(m, "  pasted-token ")
	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should emit the token")
	}
	got, ok := cmd().(events.LoginSucceeded)
	if !ok || got.Token != "pasted-token" {
		t.Errorf("got %#v, want LoginSucceeded{pasted-token}", got)
	}
}

func TestLogin_ToggleTokenMode(t *testing.T) {
	m := New(context.Background(), &fakeAuth{})
	m.Init()

	m.Update(tea.KeyPressMsg(tea.Key{Code: 't', Mod: tea.ModCtrl}))
	if !m.tokenMode {
		t.Fatal("ctrl+t should switch to token mode")
	}
	if !strings.Contains(m.View(), "Token") {
		t.Error("token mode should show the token field")
	}

	m.Update(tea.KeyPressMsg(tea.Key{Code: 't', Mod: tea.ModCtrl}))
	if m.tokenMode {
		t.Error("ctrl+t should switch back")
	}
}

func TestLogin_PrefillFocusesPassword(t *testing.T) {
	auth := &fakeAuth{token: "tok-2"}
	m := New(context.Background(), auth)
	m.Prefill(" ann ")
	m.Init()

	typeText(m, "secret")
	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter should submit a prefilled form")
	}
	if _, ok := cmd().(events.LoginSucceeded); !ok {
		t.Fatal("prefilled submit should succeed")
	}
	if auth.user != "ann" || auth.pass != "secret" {
		t.Errorf("Login(%q, %q), want (ann, secret)", auth.user, auth.pass)
	}
}

func TestLogin_PrefillIgnoredInTokenMode(t *testing.T) {
	m := New(context.Background(), nil)
	m.Prefill("ann")

	if m.focus != fieldToken {
		t.Errorf("focus = %v, want token field", m.focus)
	}
}
