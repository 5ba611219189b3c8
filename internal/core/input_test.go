package core

import (
	"slices"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveLeft)
	f.Set(ActionNone)
	f.Set(ActionRotateCW)
	f.Set(ActionMoveLeft)

	expected := []Action{ActionMoveLeft, ActionRotateCW, ActionMoveLeft}
	if !slices.Equal(f.Actions, expected) {
		t.Errorf("Actions = %v, expected %v", f.Actions, expected)
	}
	if !f.Has(ActionRotateCW) || f.Has(ActionHold) {
		t.Error("Has() does not match the queued actions")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if clone.Len() != 3 {
		t.Errorf("Clone() should not share storage, Len() = %d", clone.Len())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionHardDrop, "HardDrop"},
		{ActionPauseToggle, "PauseToggle"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
