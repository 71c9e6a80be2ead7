package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - climb
	ActionDown             // S, Down arrow - descend
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionFire             // F, X - shoot
	ActionConfirm          // Enter, Space - confirm selection
	ActionCancel           // Escape
	ActionQuit             // Q - leave the current screen
	ActionNextStage        // ; - skip to the next stage
	ActionRetry            // R - restart the current stage
	ActionNextBank         // F10 - switch map bank
	ActionDigit0
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9

	actionCount
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionFire:      "Fire",
	ActionConfirm:   "Confirm",
	ActionCancel:    "Cancel",
	ActionQuit:      "Quit",
	ActionNextStage: "NextStage",
	ActionRetry:     "Retry",
	ActionNextBank:  "NextBank",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if d, ok := a.Digit(); ok {
		return "Digit" + string(rune('0'+d))
	}
	if a >= 0 && int(a) < len(actionNames) && actionNames[a] != "" {
		return actionNames[a]
	}
	return "Unknown"
}

// Digit returns the numeric value of a digit action.
func (a Action) Digit() (int, bool) {
	if a >= ActionDigit0 && a <= ActionDigit9 {
		return int(a - ActionDigit0), true
	}
	return 0, false
}

// DigitAction returns the action for a digit 0-9.
func DigitAction(d int) Action {
	if d < 0 || d > 9 {
		return ActionNone
	}
	return ActionDigit0 + Action(d)
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// EdgeDetector derives "just pressed" semantics by diffing each frame
// against the previous one. Call Advance once per frame after all queries.
type EdgeDetector struct {
	prev InputFrame
}

// Pressed reports whether a is set in cur but was not set in the previous frame.
func (d *EdgeDetector) Pressed(cur InputFrame, a Action) bool {
	return cur.Has(a) && !d.prev.Has(a)
}

// FirstPressed returns the lowest-valued just-pressed action accepted by the filter.
func (d *EdgeDetector) FirstPressed(cur InputFrame, accept func(Action) bool) (Action, bool) {
	for a := ActionNone + 1; a < actionCount; a++ {
		if accept(a) && d.Pressed(cur, a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Advance stores cur as the previous frame.
func (d *EdgeDetector) Advance(cur InputFrame) {
	d.prev = cur.Clone()
}

// Reset forgets the previous frame.
func (d *EdgeDetector) Reset() {
	d.prev = InputFrame{}
}
