// Package timer implements the countdown state machine.
package timer

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/pomomo-tui"
)

// Option configures a Timer.
type Option func(*Timer)

// WithScheduler replaces the runtime scheduler, typically with a manual one in tests.
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		t.scheduler = s
	}
}

// WithTickInterval sets the delay between decrements.
func WithTickInterval(d time.Duration) Option {
	return func(t *Timer) {
		t.tickInterval = d
	}
}

func WithLogger(l *log.Logger) Option {
	return func(t *Timer) {
		t.l = l
	}
}

// Timer counts down whole seconds. All mutation happens under mu and
// observers are notified before mu is released, so notifications are
// delivered in mutation order.
type Timer struct {
	mu           sync.Mutex
	duration     int
	remaining    int
	state        pomomo.TimerState
	observers    []Observer
	scheduler    Scheduler
	tickInterval time.Duration
	l            *log.Logger

	// pending is the only decrement callback allowed to fire.
	pending *tick
}

type tick struct {
	h Handle
}

func New(durationSeconds int, opts ...Option) *Timer {
	if durationSeconds <= 0 {
		panic(fmt.Sprintf("timer duration must be positive, got %d", durationSeconds))
	}
	t := &Timer{
		duration:     durationSeconds,
		remaining:    durationSeconds,
		state:        pomomo.TimerInitial,
		scheduler:    RealScheduler,
		tickInterval: time.Second,
		l:            log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timer) AddObserver(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Start begins counting from Initial or Paused. It is a no-op otherwise.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != pomomo.TimerInitial && t.state != pomomo.TimerPaused {
		t.l.Debug("ignoring start", "state", t.state)
		return
	}
	t.state = pomomo.TimerCounting
	t.scheduleLocked()
	t.notifyLocked()
}

// Pause freezes remaining while counting. It is a no-op otherwise.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != pomomo.TimerCounting {
		t.l.Debug("ignoring pause", "state", t.state)
		return
	}
	t.cancelLocked()
	t.state = pomomo.TimerPaused
	t.notifyLocked()
}

// Restart returns to Initial with the full configured duration.
func (t *Timer) Restart() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.state = pomomo.TimerInitial
	t.remaining = t.duration
	t.notifyLocked()
}

// SetTime reconfigures the duration and refills remaining without touching
// the lifecycle state. Callers that want a fresh countdown call Restart first.
func (t *Timer) SetTime(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: timer duration must be positive, got %d", pomomo.ErrInvalidDuration, seconds)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == pomomo.TimerCounting {
		t.l.Warn("reconfiguring a counting timer", "remaining", t.remaining, "duration", seconds)
	}
	t.duration = seconds
	t.remaining = seconds
	t.notifyLocked()
	return nil
}

func (t *Timer) Snapshot() pomomo.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Timer) State() pomomo.TimerState {
	return t.Snapshot().State
}

func (t *Timer) Remaining() int {
	return t.Snapshot().Remaining
}

func (t *Timer) Duration() int {
	return t.Snapshot().Duration
}

// Pending reports whether a decrement callback is outstanding.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *Timer) scheduleLocked() {
	tk := &tick{}
	t.pending = tk
	tk.h = t.scheduler.AfterFunc(t.tickInterval, func() {
		t.fire(tk)
	})
}

func (t *Timer) cancelLocked() {
	if t.pending == nil {
		return
	}
	if t.pending.h != nil {
		t.pending.h.Stop()
	}
	t.pending = nil
}

func (t *Timer) fire(tk *tick) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A callback that lost the race with Stop finds a different (or no)
	// pending tick and must not touch the countdown.
	if t.pending != tk {
		return
	}
	t.pending = nil

	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = pomomo.TimerEnded
		t.l.Debug("timer ended", "duration", t.duration)
	} else {
		t.scheduleLocked()
	}
	t.notifyLocked()
}

func (t *Timer) snapshotLocked() pomomo.Snapshot {
	return pomomo.Snapshot{
		Remaining: t.remaining,
		Duration:  t.duration,
		State:     t.state,
	}
}

func (t *Timer) notifyLocked() {
	s := t.snapshotLocked()
	observers := append([]Observer(nil), t.observers...)
	for _, o := range observers {
		o.Update(s)
	}
}
