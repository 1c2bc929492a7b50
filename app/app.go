// Package app holds the configured mode durations and reconfigures the
// timer whenever the active mode or a duration changes.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/controller"
	"github.com/benjamonnguyen/pomomo-tui/timer"
)

type Option func(*App)

// WithIntervals sets how many completed pomodoros come before a long break.
func WithIntervals(n int) Option {
	return func(a *App) {
		a.intervals = n
	}
}

func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.l = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

type App struct {
	// opMu serializes operations that drive the controller. mu only guards
	// fields and is never held while calling into the controller, because
	// the timer observer below takes it from inside a notification.
	opMu sync.Mutex
	mu   sync.Mutex

	ctrl       *controller.Controller
	durations  pomomo.Durations
	mode       pomomo.Mode
	intervals  int
	completed  int
	lastState  pomomo.TimerState
	onComplete []func(pomomo.CompletedInterval)

	now func() time.Time
	l   *log.Logger
}

// New starts in work mode with the work duration loaded into the timer.
func New(ctrl *controller.Controller, durations pomomo.Durations, opts ...Option) (*App, error) {
	if ctrl == nil {
		panic("missing controller")
	}
	if err := durations.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		ctrl:      ctrl,
		durations: durations,
		mode:      pomomo.WorkMode,
		intervals: pomomo.DefaultIntervals,
		now:       time.Now,
		l:         log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := pomomo.IntervalsIntOption.Check(a.intervals); err != nil {
		return nil, err
	}

	a.lastState = ctrl.Snapshot().State
	ctrl.AddObserver(timer.ObserverFunc(a.observe))
	if err := a.apply(durations.Seconds(pomomo.WorkMode)); err != nil {
		return nil, err
	}
	return a, nil
}

// OnComplete registers a handler called when a countdown reaches zero. Handlers
// run inside the timer notification and must not block.
func (a *App) OnComplete(handler func(pomomo.CompletedInterval)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onComplete = append(a.onComplete, handler)
}

// SetDurations takes minutes. The active mode restarts with its new duration.
func (a *App) SetDurations(work, shortBreak, longBreak int) error {
	d := pomomo.Durations{Work: work, ShortBreak: shortBreak, LongBreak: longBreak}
	if err := d.Validate(); err != nil {
		return err
	}

	a.opMu.Lock()
	defer a.opMu.Unlock()

	a.mu.Lock()
	a.durations = d
	secs := d.Seconds(a.mode)
	mode := a.mode
	a.mu.Unlock()

	a.l.Info("durations updated", "work", work, "short_break", shortBreak, "long_break", longBreak, "mode", mode)
	return a.apply(secs)
}

// ChangeMode always discards elapsed time.
func (a *App) ChangeMode(mode pomomo.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", pomomo.ErrInvalidMode, uint8(mode))
	}

	a.opMu.Lock()
	defer a.opMu.Unlock()

	a.mu.Lock()
	a.mode = mode
	secs := a.durations.Seconds(mode)
	a.mu.Unlock()

	a.l.Debug("mode changed", "mode", mode, "seconds", secs)
	return a.apply(secs)
}

// NextMode follows the pomodoro cycle: a long break after every Intervals
// completed pomodoros, a short break otherwise, and work after any break.
func (a *App) NextMode() pomomo.Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != pomomo.WorkMode {
		return pomomo.WorkMode
	}
	if a.completed > 0 && a.completed%a.intervals == 0 {
		return pomomo.LongBreakMode
	}
	return pomomo.ShortBreakMode
}

// Press forwards the action button to the controller.
func (a *App) Press() {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	a.ctrl.HandleButtonPress()
}

// Restart resets the current mode without changing its duration.
func (a *App) Restart() {
	a.opMu.Lock()
	defer a.opMu.Unlock()
	a.ctrl.Restart()
}

func (a *App) Skip() error {
	return a.ChangeMode(a.NextMode())
}

// RestoreCompleted seeds the pomodoro counter, e.g. from today's history.
func (a *App) RestoreCompleted(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.completed = n
}

func (a *App) Mode() pomomo.Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) Durations() pomomo.Durations {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.durations
}

func (a *App) Completed() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.completed
}

func (a *App) Intervals() int {
	return a.intervals
}

func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

func (a *App) apply(seconds int) error {
	a.ctrl.Restart()
	if err := a.ctrl.SetTime(seconds); err != nil {
		return fmt.Errorf("failed to set timer: %w", err)
	}
	return nil
}

func (a *App) observe(s pomomo.Snapshot) {
	a.mu.Lock()
	ended := s.State == pomomo.TimerEnded && a.lastState != pomomo.TimerEnded
	a.lastState = s.State
	if !ended {
		a.mu.Unlock()
		return
	}
	if a.mode == pomomo.WorkMode {
		a.completed++
	}
	event := pomomo.CompletedInterval{
		Mode:               a.mode,
		Duration:           time.Duration(s.Duration) * time.Second,
		CompletedAt:        a.now(),
		CompletedPomodoros: a.completed,
	}
	handlers := append(([]func(pomomo.CompletedInterval))(nil), a.onComplete...)
	a.mu.Unlock()

	a.l.Info("interval completed", "mode", event.Mode, "completed_pomodoros", event.CompletedPomodoros)
	for _, h := range handlers {
		h(event)
	}
}
