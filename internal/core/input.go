package core

// Action represents a semantic host action, abstracted from physical key presses.
// This allows the simulation host to work with intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionPause           // Space, P - pause/unpause the simulation
	ActionStep            // N - advance one tick while paused
	ActionPanUp           // Up, K - move the camera up
	ActionPanDown         // Down, J - move the camera down
	ActionPanLeft         // Left, H - move the camera left
	ActionPanRight        // Right, L - move the camera right
	ActionRestart         // R - reinitialize with a new seed
	ActionHelp            // ? - toggle the full help view
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CellPoint is a pointer position in screen cells.
type CellPoint struct {
	X, Y int
}

// InputFrame collects everything the user did between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds pointer clicks in arrival order.
	Clicks []CellPoint
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

// Click records a pointer click at the given cell.
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, CellPoint{X: x, Y: y})
}

// Pan returns the requested camera direction as unit cell steps.
// Opposite directions cancel out.
func (f InputFrame) Pan() (dx, dy int) {
	if f.Has(ActionPanLeft) {
		dx--
	}
	if f.Has(ActionPanRight) {
		dx++
	}
	if f.Has(ActionPanUp) {
		dy--
	}
	if f.Has(ActionPanDown) {
		dy++
	}
	return dx, dy
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
