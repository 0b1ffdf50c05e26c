package events

import (
	"time"

	"github.com/jamessmith/termfolio/internal/logging"
)

type TimerTracer struct{}

var Timer = TimerTracer{}

func (TimerTracer) Start(task string, gen uint64, every time.Duration) {
	logging.Trace("timer.start", map[string]interface{}{"task": task, "gen": gen, "interval": every.String()})
}

func (TimerTracer) Stop(task string, running bool) {
	logging.Trace("timer.stop", map[string]interface{}{"task": task, "running": running})
}

func (TimerTracer) Stale(task string, gen uint64) {
	logging.Trace("timer.stale", map[string]interface{}{"task": task, "gen": gen})
}

func (TimerTracer) Closed() {
	logging.Trace("timer.closed", nil)
}
