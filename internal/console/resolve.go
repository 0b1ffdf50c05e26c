package console

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Outcome classifies how an input was resolved.
type Outcome int

const (
	// OutcomeEmpty is blank or whitespace-only input.
	OutcomeEmpty Outcome = iota
	// OutcomeUnknown means no command starts with the input.
	OutcomeUnknown
	// OutcomeDispatch means the input is exactly one command name.
	OutcomeDispatch
	// OutcomePartial covers prefixes that are not yet a full command.
	OutcomePartial
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnknown:
		return "unknown"
	case OutcomeDispatch:
		return "dispatch"
	case OutcomePartial:
		return "partial"
	default:
		return "empty"
	}
}

// Match computes the suggestions for input and how it resolves. cmd is only
// meaningful for OutcomeDispatch.
func Match(input string) (matches []string, cmd Command, outcome Outcome) {
	if strings.TrimSpace(input) == "" {
		return nil, 0, OutcomeEmpty
	}
	lower := strings.ToLower(input)
	for _, entry := range table {
		if strings.HasPrefix(entry.Name, lower) {
			matches = append(matches, entry.Name)
		}
	}
	if len(matches) == 0 {
		return nil, 0, OutcomeUnknown
	}
	if len(matches) == 1 && matches[0] == lower {
		cmd, _ = Lookup(matches[0])
		return matches, cmd, OutcomeDispatch
	}
	return matches, 0, OutcomePartial
}

// Resolve applies input to s as if the user had typed it.
func Resolve(s State, input string) State {
	next := s.clone()
	next.Input = input
	matches, cmd, outcome := Match(input)
	next.Suggestions = matches
	switch outcome {
	case OutcomeEmpty:
		next.Output = ""
		next.ShowMenu = false
	case OutcomeUnknown:
		next.Output = NotRecognized(input)
	case OutcomeDispatch:
		next = dispatch(next, cmd)
	case OutcomePartial:
		next.Output = ""
		// Only the literal word opens the panel here; other prefixes never do.
		next.ShowMenu = strings.ToLower(input) == "secret"
	}
	return next
}

var effects = map[Command]func(State) State{
	CommandHello: func(s State) State {
		s.Output = GreetingText
		return s
	},
	CommandHelp: func(s State) State {
		s.Output = HelpText()
		return s
	},
	CommandSecret: func(s State) State {
		s.ShowMenu = true
		s.Output = ""
		return s
	},
	CommandClear: func(s State) State {
		s.Output = ""
		s.Input = ""
		s.Suggestions = nil
		s.ShowMenu = false
		return s
	},
	CommandRainbow: func(s State) State {
		s.Rainbow = RainbowPending
		s.Output = ""
		return s
	},
	CommandWhois: func(s State) State {
		s.Output = WhoisText
		return s
	},
}

func dispatch(s State, cmd Command) State {
	return effects[cmd](s)
}

// Closest returns the command name that best fuzzy-matches input, if any.
func Closest(input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}
	ranks := fuzzy.RankFindNormalizedFold(needle, Names())
	if len(ranks) == 0 {
		// fall back to the reverse direction so "helloo" still finds "hello"
		for _, name := range Names() {
			if fuzzy.MatchNormalizedFold(name, needle) {
				return name, true
			}
		}
		return "", false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.Target, true
}
