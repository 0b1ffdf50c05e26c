package console

// Event is an input to Reduce. The set of events is closed.
type Event interface {
	isEvent()
}

// Typed replaces the input field with Text.
type Typed struct{ Text string }

// SuggestionChosen selects a suggestion by name.
type SuggestionChosen struct{ Name string }

// MenuClosed hides the settings panel.
type MenuClosed struct{}

// ModalConfirmed accepts the rainbow warning.
type ModalConfirmed struct{}

// ModalCanceled dismisses the rainbow warning.
type ModalCanceled struct{}

// BackgroundChanged sets the background color from the settings panel.
type BackgroundChanged struct{ Color string }

// TextColorChanged sets the text color from the settings panel.
type TextColorChanged struct{ Color string }

// RainbowTicked carries one frame of the rainbow animation.
type RainbowTicked struct{ Background, Text string }

// PlaceholderTicked advances the placeholder animation.
type PlaceholderTicked struct{}

func (Typed) isEvent()             {}
func (SuggestionChosen) isEvent()  {}
func (MenuClosed) isEvent()        {}
func (ModalConfirmed) isEvent()    {}
func (ModalCanceled) isEvent()     {}
func (BackgroundChanged) isEvent() {}
func (TextColorChanged) isEvent()  {}
func (RainbowTicked) isEvent()     {}
func (PlaceholderTicked) isEvent() {}

// Reduce returns the state that follows s after ev.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Typed:
		return Resolve(s, ev.Text)
	case SuggestionChosen:
		next := s.clone()
		next.Input = ev.Name
		next.Suggestions = nil
		return Resolve(next, ev.Name)
	case MenuClosed:
		next := s.clone()
		next.ShowMenu = false
		return next
	case ModalConfirmed:
		if s.Rainbow != RainbowPending {
			return s
		}
		next := s.clone()
		next.Rainbow = RainbowActive
		next.Output = RainbowActivatedText
		return next
	case ModalCanceled:
		if s.Rainbow != RainbowPending {
			return s
		}
		next := s.clone()
		next.Rainbow = RainbowIdle
		next.Output = RainbowCanceledText
		return next
	case BackgroundChanged:
		next := s.clone()
		next.BgColor = ev.Color
		return next
	case TextColorChanged:
		next := s.clone()
		next.TextColor = ev.Color
		return next
	case RainbowTicked:
		if s.Rainbow != RainbowActive {
			return s
		}
		next := s.clone()
		next.BgColor = ev.Background
		next.TextColor = ev.Text
		return next
	case PlaceholderTicked:
		next := s.clone()
		idx := next.PlaceholderIndex % len(Placeholders)
		if idx < 0 {
			idx = 0
		}
		next.Placeholder = Placeholders[idx]
		next.PlaceholderIndex = (idx + 1) % len(Placeholders)
		return next
	}
	return s
}

// TimerAction describes what must happen to the rainbow timer after a
// transition.
type TimerAction int

const (
	TimerKeep TimerAction = iota
	TimerStart
	TimerStop
)

// RainbowTimer compares two states and reports whether the rainbow timer has
// to be started or stopped so that it runs exactly while the phase is active.
func RainbowTimer(prev, next State) TimerAction {
	switch {
	case !prev.RainbowMode() && next.RainbowMode():
		return TimerStart
	case prev.RainbowMode() && !next.RainbowMode():
		return TimerStop
	default:
		return TimerKeep
	}
}
