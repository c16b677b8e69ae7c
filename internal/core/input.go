package core

// Action is a semantic command delivered by an input source.
// Games react to actions, never to raw keys or pointer events.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W, left click
	ActionStart        // Enter, R - start or restart a run
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received between two frame steps.
// The frame driver applies it at the start of the next step, so a command
// that arrives mid-frame never interleaves with a running step.
type InputFrame struct {
	Actions map[Action]bool
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
