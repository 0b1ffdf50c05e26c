package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/logging/events"
)

// Action performs a side effect outside the console state and returns an
// informational message for the status line.
type Action func() (string, error)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
}

// Result is delivered back to the model once an action completes.
type Result struct {
	ID   string
	Info string
	Err  error
}

// Bus coordinates the execution of console actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		info, err := req.Handler()
		msg := Result{ID: req.ID, Info: info, Err: err}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
