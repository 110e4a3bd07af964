package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wordflood/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// The two play modes need different bindings: in grid mode letter keys
// are free to mean movement, in typed mode every letter key spells.
type KeyMapper struct {
	typed bool
}

// NewKeyMapper creates a key mapper for grid-mode bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// NewTypedKeyMapper creates a key mapper for typed-mode bindings.
func NewTypedKeyMapper() *KeyMapper {
	return &KeyMapper{typed: true}
}

// MapKeyToFrame updates an input frame based on a key message.
// gameOver widens the restart binding in typed mode, where "r" spells
// a letter during play. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, gameOver bool) bool {
	key := msg.String()

	if km.typed {
		return km.mapTypedKey(msg, key, frame, gameOver)
	}
	return km.mapGridKey(key, frame)
}

func (km *KeyMapper) mapGridKey(key string, frame *core.InputFrame) bool {
	switch key {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	case "w", "up":
		frame.Set(core.ActionUp)
	case "s", "down":
		frame.Set(core.ActionDown)
	case "a", "left":
		frame.Set(core.ActionLeft)
	case "d", "right":
		frame.Set(core.ActionRight)
	case " ":
		frame.Set(core.ActionSelect)
	case "enter":
		frame.Set(core.ActionSubmit)
	case "c":
		frame.Set(core.ActionClear)
	case "backspace":
		frame.Set(core.ActionBackspace)
	case "p", "esc":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	}
	return false
}

func (km *KeyMapper) mapTypedKey(msg tea.KeyMsg, key string, frame *core.InputFrame, gameOver bool) bool {
	// Only ctrl+c quits here; "q" is a letter.
	switch key {
	case "ctrl+c":
		frame.Set(core.ActionQuit)
		return true
	case "enter":
		frame.Set(core.ActionSubmit)
		return false
	case "backspace":
		frame.Set(core.ActionBackspace)
		return false
	case "esc":
		frame.Set(core.ActionClear)
		return false
	case "r":
		if gameOver {
			frame.Set(core.ActionRestart)
			return false
		}
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
