package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move left (held)
	ActionRight            // D, Right arrow - move right (held)
	ActionJump             // W, Up arrow - jump (edge-triggered)
	ActionAttack           // Space - character attack (edge-triggered)
	ActionSwitch           // X, Tab - cycle to the next unlocked character
	ActionConfirm          // Enter - advance screens, confirm name entry
	ActionBack             // Escape - back out of a screen
	ActionBackspace        // Backspace - delete a character during name entry
	ActionQuit             // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionSwitch:
		return "Switch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame, plus any
// printable runes typed while a text field (name entry) is active.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Runes holds printable characters typed this frame, in order.
	// Only populated while the session is collecting text.
	Runes []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AppendRune records a typed printable character for this frame.
func (f *InputFrame) AppendRune(r rune) {
	f.Runes = append(f.Runes, r)
}

// Clear resets all actions and typed runes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append(clone.Runes, f.Runes...)
	return clone
}
