package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/catnip-games/omas-adventure/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. Returns ActionNone
// for keys without a binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a":
		return core.ActionLeft
	case "right", "d":
		return core.ActionRight
	case "up", "w":
		return core.ActionJump
	case " ":
		return core.ActionAttack
	case "x", "tab":
		return core.ActionSwitch
	case "enter":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "backspace":
		return core.ActionBackspace
	}

	return core.ActionNone
}

// MapKeyToFrame records the action for msg, if any, into the frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	if a := km.MapKey(msg); a != core.ActionNone {
		frame.Set(a)
	}
}

// MapTextKey records a key while name entry is active. Printable runes
// flow into the frame as text; only enter, escape, backspace, and
// ctrl+c keep their action meaning, so names may contain q, x, w, and
// spaces.
func (km *KeyMapper) MapTextKey(msg tea.KeyMsg, frame *core.InputFrame) {
	switch msg.String() {
	case "enter":
		frame.Set(core.ActionConfirm)
	case "esc":
		frame.Set(core.ActionBack)
	case "backspace":
		frame.Set(core.ActionBackspace)
	case "ctrl+c":
		frame.Set(core.ActionQuit)
	case " ":
		frame.AppendRune(' ')
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				frame.AppendRune(r)
			}
		}
	}
}
