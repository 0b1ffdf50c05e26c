package console

import "strings"

// Command enumerates the commands the console understands.
type Command int

const (
	CommandHello Command = iota + 1
	CommandHelp
	CommandClear
	CommandSecret
	CommandRainbow
	CommandWhois
)

// Entry is a single row of the command table.
type Entry struct {
	Command     Command
	Name        string
	Description string
}

// table order is the suggestion order; do not sort.
var table = []Entry{
	{Command: CommandHello, Name: "hello", Description: "greets user"},
	{Command: CommandHelp, Name: "help", Description: "lists commands"},
	{Command: CommandClear, Name: "clear", Description: "clears screen"},
	{Command: CommandSecret, Name: "secret", Description: "???"},
	{Command: CommandRainbow, Name: "rainbow", Description: "find out"},
	{Command: CommandWhois, Name: "whois", Description: "james smith info"},
}

// Commands returns a copy of the command table in display order.
func Commands() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Names returns the command vocabulary in display order.
func Names() []string {
	names := make([]string, len(table))
	for i, entry := range table {
		names[i] = entry.Name
	}
	return names
}

// Lookup resolves a command by its exact name.
func Lookup(name string) (Command, bool) {
	for _, entry := range table {
		if entry.Name == name {
			return entry.Command, true
		}
	}
	return 0, false
}

// String returns the command name.
func (c Command) String() string {
	if entry, ok := c.entry(); ok {
		return entry.Name
	}
	return "unknown"
}

// Description returns the human readable summary shown next to suggestions.
func (c Command) Description() string {
	if entry, ok := c.entry(); ok {
		return entry.Description
	}
	return ""
}

func (c Command) entry() (Entry, bool) {
	for _, entry := range table {
		if entry.Command == c {
			return entry, true
		}
	}
	return Entry{}, false
}

// HelpText lists every command name.
func HelpText() string {
	return "Available commands: " + strings.Join(Names(), ", ")
}

const (
	GreetingText          = "Hi there, welcome to the CLI!"
	WhoisText             = "whois"
	RainbowActivatedText  = "Rainbow mode activated."
	RainbowCanceledText   = "Rainbow mode canceled."
	RainbowWarningTitle   = "Sensitivity Warning"
	RainbowWarningMessage = "Rainbow mode can cause visual discomfort. Please use with caution."
)

// NotRecognized formats the output for an unknown command. The raw input is
// kept verbatim, including case and surrounding whitespace.
func NotRecognized(input string) string {
	return "Command '" + input + "' not recognized."
}
