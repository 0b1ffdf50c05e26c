package dispatcher

import (
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/schedule"
)

// ColorSource produces the colors used for rainbow frames.
type ColorSource interface {
	Hex() string
}

// Dispatcher turns scheduler ticks into console events.
type Dispatcher struct {
	colors ColorSource
}

func New(colors ColorSource) *Dispatcher {
	return &Dispatcher{colors: colors}
}

// Handle returns the console event for tick. Unknown tasks yield false.
func (d *Dispatcher) Handle(tick schedule.Tick) (console.Event, bool) {
	switch tick.Task {
	case schedule.TaskPlaceholder:
		return console.PlaceholderTicked{}, true
	case schedule.TaskRainbow:
		if d.colors == nil {
			return nil, false
		}
		// background first, text second; each drawn independently
		bg := d.colors.Hex()
		fg := d.colors.Hex()
		return console.RainbowTicked{Background: bg, Text: fg}, true
	}
	return nil, false
}
