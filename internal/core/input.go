package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events into actions; the simulation never
// sees raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A, H - move left while held
	ActionRight         // Right arrow, D, L - move right while held
	ActionJump          // Space, Up, W - jump while held and grounded
	ActionPause         // P, Escape - pause/unpause
	ActionBuyJump       // 1 - buy a jump force upgrade in the shop
	ActionBuySpeed      // 2 - buy a speed upgrade in the shop
	ActionContinue      // Enter - leave the shop and start the next level
	ActionRestart       // R - restart after game over or completion
	ActionMusic         // M - toggle background music
	ActionSound         // N - toggle sound effects
	ActionQuit          // Q, Ctrl+C - exit
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
	case ActionPause:
		return "Pause"
	case ActionBuyJump:
		return "BuyJump"
	case ActionBuySpeed:
		return "BuySpeed"
	case ActionContinue:
		return "Continue"
	case ActionRestart:
		return "Restart"
	case ActionMusic:
		return "Music"
	case ActionSound:
		return "Sound"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of held actions for a single simulation tick.
// It is taken once per tick so asynchronous key events cannot interleave with
// the step.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions held.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
