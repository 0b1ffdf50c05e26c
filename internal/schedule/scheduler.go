package schedule

import (
	"context"
	"sync"
	"time"
)

// Task identifies a repeating job owned by the scheduler.
type Task int

const (
	TaskPlaceholder Task = iota
	TaskRainbow
)

func (t Task) String() string {
	switch t {
	case TaskPlaceholder:
		return "placeholder"
	case TaskRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Tick is emitted once per interval while a task runs. Gen identifies the run
// that produced it so consumers can drop ticks from a run that was stopped.
type Tick struct {
	Task Task
	Gen  uint64
	At   time.Time
}

type run struct {
	gen    uint64
	cancel context.CancelFunc
}

// Scheduler runs interval tasks and publishes their ticks on one channel. At
// most one run per task exists at any time.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	runs    map[Task]*run
	nextGen uint64
	closed  bool

	events chan Tick
	wg     sync.WaitGroup
}

// New creates an idle scheduler.
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		runs:   make(map[Task]*run),
		events: make(chan Tick, 16),
	}
}

// Events returns the channel ticks are delivered on. It is closed by Close.
func (s *Scheduler) Events() <-chan Tick {
	return s.events
}

// Start runs task every interval, replacing any run already in progress, and
// returns the generation of the new run. Start after Close returns 0.
func (s *Scheduler) Start(task Task, every time.Duration) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || every <= 0 {
		return 0
	}
	if existing, ok := s.runs[task]; ok {
		existing.cancel()
	}
	s.nextGen++
	ctx, cancel := context.WithCancel(s.ctx)
	r := &run{gen: s.nextGen, cancel: cancel}
	s.runs[task] = r
	s.wg.Add(1)
	go s.loop(ctx, task, r.gen, every)
	return r.gen
}

// Stop cancels the current run of task. It reports whether one was running.
func (s *Scheduler) Stop(task Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[task]
	if !ok {
		return false
	}
	r.cancel()
	delete(s.runs, task)
	return true
}

// Current returns the generation of the active run of task.
func (s *Scheduler) Current(task Task) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[task]
	if !ok {
		return 0, false
	}
	return r.gen, true
}

// Close stops every task, waits for the goroutines to exit and closes the
// events channel. It is safe to call more than once.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.runs = make(map[Task]*run)
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	close(s.events)
}

func (s *Scheduler) loop(ctx context.Context, task Task, gen uint64, every time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C:
			select {
			case <-ctx.Done():
				return
			case s.events <- Tick{Task: task, Gen: gen, At: at}:
			}
		}
	}
}
