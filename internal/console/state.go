package console

// RainbowPhase tracks the rainbow mode state machine.
type RainbowPhase int

const (
	RainbowIdle RainbowPhase = iota
	// RainbowPending means the warning modal is waiting for an answer.
	RainbowPending
	// RainbowActive means the color animation is running.
	RainbowActive
)

func (p RainbowPhase) String() string {
	switch p {
	case RainbowPending:
		return "pending"
	case RainbowActive:
		return "active"
	default:
		return "idle"
	}
}

const (
	DefaultBackground  = "#D3D3D3"
	DefaultForeground  = "#333333"
	DefaultPlaceholder = "Type a command"
)

// Placeholders is the animation sequence for the empty input field.
var Placeholders = [...]string{
	"Type a command",
	"Type a command.",
	"Type a command..",
	"Type a command...",
}

// State is the full view state of the console. Values are never mutated in
// place; Reduce returns a new State for every event.
type State struct {
	Input       string
	Output      string
	Suggestions []string
	ShowMenu    bool
	Rainbow     RainbowPhase
	BgColor     string
	TextColor   string
	Placeholder string
	// PlaceholderIndex is the frame shown on the next placeholder tick.
	PlaceholderIndex int
}

// NewState returns the state present when the console is first shown.
func NewState() State {
	return State{
		BgColor:     DefaultBackground,
		TextColor:   DefaultForeground,
		Placeholder: DefaultPlaceholder,
	}
}

// WithColors overrides the starting colors.
func (s State) WithColors(background, foreground string) State {
	if background != "" {
		s.BgColor = background
	}
	if foreground != "" {
		s.TextColor = foreground
	}
	return s
}

// ShowModal reports whether the rainbow warning is visible.
func (s State) ShowModal() bool {
	return s.Rainbow == RainbowPending
}

// RainbowMode reports whether the color animation should be running.
func (s State) RainbowMode() bool {
	return s.Rainbow == RainbowActive
}

func (s State) clone() State {
	if s.Suggestions != nil {
		s.Suggestions = append([]string(nil), s.Suggestions...)
	}
	return s
}
