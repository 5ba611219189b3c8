package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// fakeClock returns a KeyMapper whose time only moves when told to.
func fakeClock() (*KeyMapper, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	km := NewKeyMapper()
	km.now = func() time.Time { return now }
	return km, &now
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{"a", runeKey('a'), core.ActionMoveLeft, false},
		{"h", runeKey('h'), core.ActionMoveLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{"l", runeKey('l'), core.ActionMoveRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW, false},
		{"x", runeKey('x'), core.ActionRotateCW, false},
		{"z", runeKey('z'), core.ActionRotateCCW, false},
		{"c", runeKey('c'), core.ActionHold, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionHold, false},
		{"n", runeKey('n'), core.ActionNewGame, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPauseToggle, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('y'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper()
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyDebouncesToggles(t *testing.T) {
	km, now := fakeClock()
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	if a, _ := km.MapKey(enter); a != core.ActionPauseToggle {
		t.Fatalf("first enter = %v, expected PauseToggle", a)
	}

	*now = now.Add(toggleRepeat / 2)
	if a, _ := km.MapKey(enter); a != core.ActionNone {
		t.Errorf("repeated enter = %v, expected None", a)
	}

	// other toggles keep their own timer
	if a, _ := km.MapKey(runeKey('n')); a != core.ActionNewGame {
		t.Errorf("n after enter = %v, expected NewGame", a)
	}

	*now = now.Add(toggleRepeat)
	if a, _ := km.MapKey(enter); a != core.ActionPauseToggle {
		t.Errorf("enter after %v = %v, expected PauseToggle", toggleRepeat, a)
	}

	// moves are never debounced
	for i := 0; i < 3; i++ {
		if a, _ := km.MapKey(runeKey('a')); a != core.ActionMoveLeft {
			t.Errorf("left #%d = %v, expected MoveLeft", i, a)
		}
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(runeKey('a'), &frame)
	km.MapKeyToFrame(runeKey('y'), &frame)
	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); !quit {
		t.Error("MapKeyToFrame(ctrl+c) = false, expected quit")
	}

	want := []core.Action{core.ActionRotateCW, core.ActionMoveLeft, core.ActionQuit}
	if len(frame.Actions) != len(want) {
		t.Fatalf("frame.Actions = %v, expected %v", frame.Actions, want)
	}
	for i, a := range want {
		if frame.Actions[i] != a {
			t.Errorf("frame.Actions[%d] = %v, expected %v", i, frame.Actions[i], a)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionPrev},
		{runeKey('d'), MenuActionNext},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('y'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "hard")
	if got := m.Difficulty(); got != "hard" {
		t.Fatalf("Difficulty() = %q, expected hard", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if got := m.Difficulty(); got != "fixed" {
		t.Errorf("after right Difficulty() = %q, expected fixed", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if got := m.Difficulty(); got != "" {
		t.Errorf("after wrap Difficulty() = %q, expected empty", got)
	}
	if !strings.Contains(m.View(), "< config >") {
		t.Error("View() does not show the config difficulty label")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{95*time.Second + 900*time.Millisecond, "1:35"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
