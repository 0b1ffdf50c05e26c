package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/logging/events"
	"github.com/jamessmith/termfolio/internal/schedule"
)

// Timers is the scheduler surface the model drives. *schedule.Scheduler
// satisfies it.
type Timers interface {
	Start(task schedule.Task, every time.Duration) uint64
	Stop(task schedule.Task) bool
	Current(task schedule.Task) (uint64, bool)
	Events() <-chan schedule.Tick
}

func waitForTick(t Timers) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-t.Events()
		if !ok {
			return ticksDoneMsg{}
		}
		return tickMsg{tick: tick}
	}
}

type tickMsg struct {
	tick schedule.Tick
}

type ticksDoneMsg struct{}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tm, ok := msg.(tickMsg)
	if !ok {
		return nil
	}
	m.applyTick(tm.tick)
	if m.timers != nil && m.ticking {
		return waitForTick(m.timers)
	}
	return nil
}

func (m *Model) handleTicksDoneMsg(tea.Msg) tea.Cmd {
	if m.ticking {
		events.Timer.Closed()
	}
	m.ticking = false
	return nil
}

func (m *Model) applyTick(tick schedule.Tick) {
	if m.timers != nil {
		gen, ok := m.timers.Current(tick.Task)
		if !ok || gen != tick.Gen {
			events.Timer.Stale(tick.Task.String(), tick.Gen)
			return
		}
	}
	ev, ok := m.dispatcher.Handle(tick)
	if !ok {
		return
	}
	m.apply(ev)
}

func (m *Model) syncTimers(prev, next console.State) {
	switch console.RainbowTimer(prev, next) {
	case console.TimerStart:
		m.startTimer(schedule.TaskRainbow, m.rainbowInterval)
	case console.TimerStop:
		m.stopTimer(schedule.TaskRainbow)
	}
}

func (m *Model) startTimer(task schedule.Task, every time.Duration) {
	if m.timers == nil {
		return
	}
	gen := m.timers.Start(task, every)
	events.Timer.Start(task.String(), gen, every)
}

func (m *Model) stopTimer(task schedule.Task) {
	if m.timers == nil {
		return
	}
	running := m.timers.Stop(task)
	events.Timer.Stop(task.String(), running)
}
