package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wordflood/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{runeKey("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey("s"), core.ActionDown},
		{runeKey("a"), core.ActionLeft},
		{runeKey("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionSelect},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit},
		{runeKey("c"), core.ActionClear},
		{runeKey("p"), core.ActionPause},
		{runeKey("r"), core.ActionRestart},
	}

	for _, tc := range cases {
		frame := core.NewInputFrame()
		if quit := km.MapKeyToFrame(tc.msg, &frame, false); quit {
			t.Errorf("Key %q should not quit", tc.msg.String())
		}
		if !frame.Has(tc.action) {
			t.Errorf("Key %q should map to action %v", tc.msg.String(), tc.action)
		}
	}
}

func TestGridQuitKeys(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		frame := core.NewInputFrame()
		if !km.MapKeyToFrame(msg, &frame, false) {
			t.Errorf("Key %q should quit in grid mode", msg.String())
		}
	}
}

func TestTypedKeysSpell(t *testing.T) {
	km := NewTypedKeyMapper()

	frame := core.NewInputFrame()
	for _, s := range []string{"c", "a", "t", "q", "r"} {
		if km.MapKeyToFrame(runeKey(s), &frame, false) {
			t.Errorf("Letter %q should not quit in typed mode", s)
		}
	}
	if got := string(frame.Text); got != "catqr" {
		t.Errorf("Typed text = %q, expected catqr", got)
	}
	if frame.Has(core.ActionRestart) {
		t.Error("r during play should spell, not restart")
	}
}

func TestTypedRestartAfterGameOver(t *testing.T) {
	km := NewTypedKeyMapper()

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey("r"), &frame, true)
	if !frame.Has(core.ActionRestart) {
		t.Error("r after game over should restart")
	}
	if len(frame.Text) != 0 {
		t.Error("r after game over should not spell")
	}
}

func TestTypedControlKeys(t *testing.T) {
	km := NewTypedKeyMapper()

	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame, false)
	if !frame.Has(core.ActionSubmit) {
		t.Error("Enter should submit")
	}

	frame = core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyBackspace}, &frame, false)
	if !frame.Has(core.ActionBackspace) {
		t.Error("Backspace should erase")
	}

	frame = core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame, false)
	if !frame.Has(core.ActionClear) {
		t.Error("Esc should clear the word")
	}

	frame = core.NewInputFrame()
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame, false) {
		t.Error("Ctrl+C should quit")
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
	}

	for _, tc := range cases {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("Key %q mapped to %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}
