package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, "#D3D3D3", s.BgColor)
	assert.Equal(t, "#333333", s.TextColor)
	assert.Equal(t, "Type a command", s.Placeholder)
	assert.Empty(t, s.Input)
	assert.Empty(t, s.Output)
	assert.Empty(t, s.Suggestions)
	assert.False(t, s.ShowMenu)
	assert.False(t, s.ShowModal())
	assert.False(t, s.RainbowMode())
}

func TestCommandTableOrderAndLookup(t *testing.T) {
	assert.Equal(t, []string{"hello", "help", "clear", "secret", "rainbow", "whois"}, Names())
	for _, entry := range Commands() {
		cmd, ok := Lookup(entry.Name)
		require.True(t, ok, entry.Name)
		assert.Equal(t, entry.Command, cmd)
		assert.Equal(t, entry.Name, cmd.String())
		assert.Equal(t, entry.Description, cmd.Description())
	}
	_, ok := Lookup("HELLO")
	assert.False(t, ok)
}

func TestBlankInputClearsEverything(t *testing.T) {
	for _, input := range []string{"", " ", "\t  "} {
		s := NewState()
		s.Output = "stale"
		s.ShowMenu = true
		s.Suggestions = []string{"hello"}
		next := Reduce(s, Typed{Text: input})
		assert.Empty(t, next.Suggestions, "input %q", input)
		assert.Equal(t, "", next.Output, "input %q", input)
		assert.False(t, next.ShowMenu, "input %q", input)
		assert.Equal(t, input, next.Input)
	}
}

func TestUnknownInputKeepsRawText(t *testing.T) {
	for _, input := range []string{"xyz", "Foo Bar", " hello", "helloo"} {
		next := Reduce(NewState(), Typed{Text: input})
		assert.Equal(t, "Command '"+input+"' not recognized.", next.Output)
		assert.Empty(t, next.Suggestions)
	}
}

func TestUnknownInputLeavesPanelAlone(t *testing.T) {
	s := Reduce(NewState(), Typed{Text: "secret"})
	require.True(t, s.ShowMenu)
	next := Reduce(s, Typed{Text: "secretz"})
	assert.True(t, next.ShowMenu)
}

func TestExactMatchDispatch(t *testing.T) {
	cases := []struct {
		input  string
		output string
	}{
		{"hello", "Hi there, welcome to the CLI!"},
		{"HELLO", "Hi there, welcome to the CLI!"},
		{"HeLp", "Available commands: hello, help, clear, secret, rainbow, whois"},
		{"whois", "whois"},
	}
	for _, tc := range cases {
		next := Reduce(NewState(), Typed{Text: tc.input})
		assert.Equal(t, tc.output, next.Output, tc.input)
		assert.Len(t, next.Suggestions, 1, tc.input)
	}
}

func TestPartialInput(t *testing.T) {
	next := Reduce(NewState(), Typed{Text: "sec"})
	assert.Equal(t, []string{"secret"}, next.Suggestions)
	assert.Equal(t, "", next.Output)
	assert.False(t, next.ShowMenu)

	next = Reduce(NewState(), Typed{Text: "he"})
	assert.Equal(t, []string{"hello", "help"}, next.Suggestions)
	assert.Equal(t, "", next.Output)
}

func TestPartialInputHidesPanel(t *testing.T) {
	s := Reduce(NewState(), Typed{Text: "secret"})
	require.True(t, s.ShowMenu)
	next := Reduce(s, Typed{Text: "secre"})
	assert.False(t, next.ShowMenu)
}

func TestSecretShowsPanel(t *testing.T) {
	s := NewState()
	s.Output = "something"
	next := Reduce(s, Typed{Text: "secret"})
	assert.True(t, next.ShowMenu)
	assert.Equal(t, "", next.Output)
}

func TestClearResetsView(t *testing.T) {
	s := Reduce(NewState(), Typed{Text: "secret"})
	s = Reduce(s, Typed{Text: "hello"})
	require.True(t, s.ShowMenu)
	next := Reduce(s, Typed{Text: "CLEAR"})
	assert.Equal(t, "", next.Input)
	assert.Equal(t, "", next.Output)
	assert.Empty(t, next.Suggestions)
	assert.False(t, next.ShowMenu)
}

func TestSuggestionChosenDispatches(t *testing.T) {
	s := Reduce(NewState(), Typed{Text: "cl"})
	require.Equal(t, []string{"clear"}, s.Suggestions)
	s.ShowMenu = true
	next := Reduce(s, SuggestionChosen{Name: "clear"})
	assert.Equal(t, "", next.Input)
	assert.Equal(t, "", next.Output)
	assert.Empty(t, next.Suggestions)
	assert.False(t, next.ShowMenu)

	next = Reduce(Reduce(NewState(), Typed{Text: "h"}), SuggestionChosen{Name: "hello"})
	assert.Equal(t, "hello", next.Input)
	assert.Equal(t, GreetingText, next.Output)
	assert.Equal(t, []string{"hello"}, next.Suggestions)
}

func TestSuggestionsAlwaysMatchPrefix(t *testing.T) {
	inputs := []string{"h", "he", "hel", "HELP", "r", "w", "s", "c", "x", "whoi", "rain"}
	for _, input := range inputs {
		next := Reduce(NewState(), Typed{Text: input})
		want := []string{}
		for _, name := range Names() {
			if strings.HasPrefix(name, strings.ToLower(input)) {
				want = append(want, name)
			}
		}
		got := next.Suggestions
		if got == nil {
			got = []string{}
		}
		assert.Equal(t, want, got, input)
	}
}

func TestRainbowStateMachine(t *testing.T) {
	s := Reduce(NewState(), Typed{Text: "rainbow"})
	assert.True(t, s.ShowModal())
	assert.Equal(t, "", s.Output)
	assert.Equal(t, TimerKeep, RainbowTimer(NewState(), s))

	active := Reduce(s, ModalConfirmed{})
	assert.True(t, active.RainbowMode())
	assert.False(t, active.ShowModal())
	assert.Equal(t, "Rainbow mode activated.", active.Output)
	assert.Equal(t, TimerStart, RainbowTimer(s, active))

	ticked := Reduce(active, RainbowTicked{Background: "#010203", Text: "#040506"})
	assert.Equal(t, "#010203", ticked.BgColor)
	assert.Equal(t, "#040506", ticked.TextColor)

	again := Reduce(ticked, Typed{Text: "rainbow"})
	assert.True(t, again.ShowModal())
	assert.Equal(t, TimerStop, RainbowTimer(ticked, again))

	canceled := Reduce(again, ModalCanceled{})
	assert.Equal(t, RainbowIdle, canceled.Rainbow)
	assert.Equal(t, "Rainbow mode canceled.", canceled.Output)
	assert.Equal(t, TimerKeep, RainbowTimer(again, canceled))

	stale := Reduce(canceled, RainbowTicked{Background: "#ffffff", Text: "#000000"})
	assert.Equal(t, canceled.BgColor, stale.BgColor)
	assert.Equal(t, canceled.TextColor, stale.TextColor)
}

func TestModalAnswersIgnoredWhenHidden(t *testing.T) {
	s := NewState()
	assert.Equal(t, s, Reduce(s, ModalConfirmed{}))
	assert.Equal(t, s, Reduce(s, ModalCanceled{}))
}

func TestPlaceholderCycles(t *testing.T) {
	s := NewState()
	var seen []string
	for i := 0; i < 9; i++ {
		s = Reduce(s, PlaceholderTicked{})
		seen = append(seen, s.Placeholder)
	}
	assert.Equal(t, []string{
		"Type a command",
		"Type a command.",
		"Type a command..",
		"Type a command...",
		"Type a command",
		"Type a command.",
		"Type a command..",
		"Type a command...",
		"Type a command",
	}, seen)
}

func TestPlaceholderIndependentOfCommands(t *testing.T) {
	s := Reduce(NewState(), PlaceholderTicked{})
	s = Reduce(s, PlaceholderTicked{})
	s = Reduce(s, Typed{Text: "clear"})
	s = Reduce(s, Typed{Text: "rainbow"})
	s = Reduce(s, ModalConfirmed{})
	assert.Equal(t, "Type a command.", s.Placeholder)
	assert.Equal(t, 2, s.PlaceholderIndex)
}

func TestColorChanges(t *testing.T) {
	s := Reduce(NewState(), BackgroundChanged{Color: "#112233"})
	s = Reduce(s, TextColorChanged{Color: "#445566"})
	assert.Equal(t, "#112233", s.BgColor)
	assert.Equal(t, "#445566", s.TextColor)
	s = Reduce(s, MenuClosed{})
	assert.False(t, s.ShowMenu)
	assert.Equal(t, "#112233", s.BgColor)
}

func TestReduceDoesNotAliasSuggestions(t *testing.T) {
	s := Reduce(NewState(), Typed{Text: "he"})
	next := Reduce(s, BackgroundChanged{Color: "#000000"})
	next.Suggestions[0] = "mutated"
	assert.Equal(t, "hello", s.Suggestions[0])
}

func TestClosest(t *testing.T) {
	name, ok := Closest("hlo")
	require.True(t, ok)
	assert.Equal(t, "hello", name)

	name, ok = Closest("helloo")
	require.True(t, ok)
	assert.Equal(t, "hello", name)

	_, ok = Closest("zzz")
	assert.False(t, ok)

	_, ok = Closest("   ")
	assert.False(t, ok)
}
