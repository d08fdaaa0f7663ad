package state

import (
	"context"
	"testing"
)

func TestFlowState_BeginCycleCancelsPrevious(t *testing.T) {
	s := NewFlowState()
	if s.Phase() != Unchecked {
		t.Fatalf("new FlowState phase = %v, want Unchecked", s.Phase())
	}

	ctx1, gen1 := s.BeginCycle(context.Background())
	s.SetCredential("tok")

	ctx2, gen2 := s.BeginCycle(context.Background())

	if gen2 == gen1 {
		t.Errorf("BeginCycle() should bump the generation, got %d twice", gen1)
	}
	if ctx1.Err() == nil {
		t.Error("previous cycle context should be canceled")
	}
	if ctx2.Err() != nil {
		t.Error("current cycle context should be live")
	}
	if s.IsCurrent(gen1) {
		t.Error("IsCurrent(old generation) = true, want false")
	}
	if !s.IsCurrent(gen2) {
		t.Error("IsCurrent(current generation) = false, want true")
	}
	if s.Credential() != "" {
		t.Errorf("new cycle should forget the credential, got %q", s.Credential())
	}
	if s.Phase() != CheckingCredential {
		t.Errorf("phase = %v, want CheckingCredential", s.Phase())
	}
}

func TestFlowState_Invalidate(t *testing.T) {
	s := NewFlowState()
	ctx, gen := s.BeginCycle(context.Background())

	s.Invalidate()

	if s.IsCurrent(gen) {
		t.Error("Invalidate() should make the generation stale")
	}
	if ctx.Err() == nil {
		t.Error("Invalidate() should cancel the cycle context")
	}
}

func TestErrorState(t *testing.T) {
	s := NewErrorState()
	if s.HasError() || s.AlertVisible() {
		t.Fatal("new ErrorState should be empty")
	}

	s.Set(FetchingColumns, "boom")
	if !s.AlertVisible() {
		t.Error("Set() should show the alert")
	}
	if s.Failed() != FetchingColumns {
		t.Errorf("Failed() = %v, want FetchingColumns", s.Failed())
	}

	s.Dismiss()
	if s.AlertVisible() {
		t.Error("Dismiss() should hide the alert")
	}
	if !s.HasError() || s.Get() != "boom" {
		t.Error("Dismiss() should keep the failure recorded")
	}

	s.Clear()
	if s.HasError() {
		t.Error("Clear() should remove the failure")
	}
}

func TestPhase_Busy(t *testing.T) {
	tests := []struct {
		phase Phase
		want  bool
	}{
		{Unchecked, false},
		{CheckingCredential, true},
		{LoggedOut, false},
		{FetchingUser, true},
		{FetchingColumns, true},
		{FetchError, false},
		{Rendered, false},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			if got := tt.phase.Busy(); got != tt.want {
				t.Errorf("Busy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUIState_Viewport(t *testing.T) {
	s := NewUIState()
	s.SetWidth(4 + 46*2)

	if s.ViewportSize() != 2 {
		t.Fatalf("ViewportSize() = %d, want 2", s.ViewportSize())
	}

	s.EnsureSelectionVisible(3)
	if s.ViewportOffset() != 2 {
		t.Errorf("ViewportOffset() = %d, want 2", s.ViewportOffset())
	}

	s.EnsureSelectionVisible(0)
	if s.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset() = %d, want 0", s.ViewportOffset())
	}

	s.SetHeight(3)
	if s.ContentHeight() != 5 {
		t.Errorf("ContentHeight() = %d, want minimum 5", s.ContentHeight())
	}
}
