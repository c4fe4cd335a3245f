package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionSelect         // Space, Enter - arm or swap the cell under the cursor
	ActionCancel         // X - disarm the armed cell
	ActionConfirm        // Enter in menus
	ActionBack           // B, Escape - leave to menu
	ActionRestart        // R - new board
	ActionFinish         // F - end an endless run
	ActionGrow           // + - bigger board
	ActionShrink         // - - smaller board
	ActionPause          // P
	ActionQuit           // Q, Ctrl+C
	ActionClick          // Mouse press, position in InputFrame.Click
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionCancel:  "Cancel",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionFinish:  "Finish",
	ActionGrow:    "Grow",
	ActionShrink:  "Shrink",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
	ActionClick:   "Click",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
	// Click is the last mouse press of the frame. Only meaningful when
	// ActionClick is set.
	Click Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetClick records a mouse press at (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Set(ActionClick)
	f.Click = Point{X: x, Y: y}
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Click = Point{}
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Click = f.Click
	return clone
}
