package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/data/dispatcher"
	"github.com/jamessmith/termfolio/internal/logging/events"
	"github.com/jamessmith/termfolio/internal/profile"
	"github.com/jamessmith/termfolio/internal/schedule"
	"github.com/jamessmith/termfolio/internal/theme"
	"github.com/jamessmith/termfolio/internal/ui/command"
	uistate "github.com/jamessmith/termfolio/internal/ui/state"
)

// Focus identifies which widget receives key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusBackground
	FocusText
)

func (f Focus) String() string {
	switch f {
	case FocusBackground:
		return "background"
	case FocusText:
		return "text"
	default:
		return "input"
	}
}

const (
	defaultPlaceholderInterval = 500 * time.Millisecond
	defaultRainbowInterval     = 100 * time.Millisecond
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a new Model.
type Options struct {
	Width               int
	Height              int
	ShowFooter          bool
	Verbose             bool
	Background          string
	Foreground          string
	Accent              string
	Profile             profile.Profile
	Timers              Timers
	Colors              dispatcher.ColorSource
	PlaceholderInterval time.Duration
	RainbowInterval     time.Duration
}

// Model implements the Bubble Tea model for the command console.
type Model struct {
	state  console.State
	line   uistate.Line
	picker uistate.Picker
	focus  Focus
	panel  *settingsPanel
	modal  modalButton

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	hint       string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	inputCursor        cursor.Model
	inputCursorDirty   bool
	inputCursorFocused bool

	// suggestionRow is the screen row of the first suggestion in the last
	// rendered frame, or -1 when none were drawn.
	suggestionRow int

	profile profile.Profile
	accent  string

	timers              Timers
	ticking             bool
	dispatcher          *dispatcher.Dispatcher
	placeholderInterval time.Duration
	rainbowInterval     time.Duration

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel initialises the console with default state and the provided options.
func NewModel(opts Options) *Model {
	st := console.NewState().WithColors(opts.Background, opts.Foreground)
	m := &Model{
		state:               st,
		focus:               FocusInput,
		modal:               modalOkay,
		panel:               newSettingsPanel(st.BgColor, st.TextColor),
		showFooter:          opts.ShowFooter,
		verbose:             opts.Verbose,
		suggestionRow:       -1,
		profile:             opts.Profile.Merge(profile.Default()),
		accent:              opts.Accent,
		timers:              opts.Timers,
		dispatcher:          dispatcher.New(opts.Colors),
		placeholderInterval: opts.PlaceholderInterval,
		rainbowInterval:     opts.RainbowInterval,
		bus:                 command.New(),
	}
	if m.placeholderInterval <= 0 {
		m.placeholderInterval = defaultPlaceholderInterval
	}
	if m.rainbowInterval <= 0 {
		m.rainbowInterval = defaultRainbowInterval
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	m.inputCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.timers != nil {
		m.startTimer(schedule.TaskPlaceholder, m.placeholderInterval)
		m.ticking = true
		cmds = append(cmds, waitForTick(m.timers))
	}
	if cmd := m.inputCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.inputCursorFocused = true
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateInputCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// State returns a snapshot of the console state.
func (m *Model) State() console.State {
	return m.state
}

// Focus reports the widget that currently receives key presses.
func (m *Model) Focus() Focus {
	return m.focus
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(ticksDoneMsg{}):      m.handleTicksDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.inputCursorDirty {
		m.inputCursorDirty = false
		m.inputCursor.Blink = false
		if m.inputCursorFocused {
			if cmd := m.inputCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// apply runs ev through the reducer and brings every piece of UI state that
// mirrors the console state back in line with it.
func (m *Model) apply(ev console.Event) {
	prev := m.state
	next := console.Reduce(prev, ev)
	m.state = next
	m.syncTimers(prev, next)
	if m.line.Text != next.Input {
		m.line.Reset(next.Input)
		m.inputCursorDirty = true
	}
	m.picker.Reset(next.Suggestions)
	if prev.ShowMenu != next.ShowMenu {
		if next.ShowMenu {
			events.Panel.Open()
		} else {
			events.Panel.Close()
			m.setFocus(FocusInput)
		}
	}
	if !prev.ShowModal() && next.ShowModal() {
		m.modal = modalOkay
		events.Modal.Show()
	}
	if prev.BgColor != next.BgColor {
		m.panel.Follow(FocusBackground, next.BgColor)
	}
	if prev.TextColor != next.TextColor {
		m.panel.Follow(FocusText, next.TextColor)
	}
}

// resolveInput re-runs the resolver for freshly edited input text.
func (m *Model) resolveInput(text string) {
	_, cmd, outcome := console.Match(text)
	m.apply(console.Typed{Text: text})
	m.noteResolution(text, cmd, outcome)
}

func (m *Model) chooseSuggestion(name, via string) {
	events.Console.Suggestion(name, via)
	_, cmd, outcome := console.Match(name)
	m.apply(console.SuggestionChosen{Name: name})
	m.noteResolution(name, cmd, outcome)
}

func (m *Model) noteResolution(input string, cmd console.Command, outcome console.Outcome) {
	events.Console.Resolve(input, outcome.String(), m.state.Suggestions)
	m.hint = ""
	switch outcome {
	case console.OutcomeDispatch:
		events.Console.Dispatch(cmd.String())
	case console.OutcomeUnknown:
		if name, ok := console.Closest(input); ok {
			m.hint = didYouMean(name)
		}
	}
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	if f != FocusInput && !m.state.ShowMenu {
		f = FocusInput
	}
	if f == m.focus {
		return nil
	}
	m.focus = f
	events.Panel.Focus(f.String())
	return m.panel.Focus(f)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
