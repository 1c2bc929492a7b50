// Package controller turns action-button presses into timer transitions.
package controller

import (
	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/timer"
	"github.com/benjamonnguyen/pomomo-tui/view"
)

type Controller struct {
	timer *timer.Timer
	view  *view.TimerView
	l     *log.Logger
}

// New builds the timer view over target and subscribes it to t.
func New(t *timer.Timer, target view.Target, logger *log.Logger) *Controller {
	if t == nil {
		panic("missing timer")
	}
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{
		timer: t,
		view:  view.New(target),
		l:     logger,
	}
	t.AddObserver(c.view)
	c.view.Update(t.Snapshot())
	return c
}

// HandleButtonPress dispatches on the timer's lifecycle state. The label is
// not written here: the view sets it from the snapshot each transition
// publishes, so a tick landing mid-press cannot leave it stale.
func (c *Controller) HandleButtonPress() {
	state := c.timer.State()
	c.l.Debug("button pressed", "state", state)
	switch state {
	case pomomo.TimerInitial, pomomo.TimerPaused:
		c.timer.Start()
	case pomomo.TimerCounting:
		c.timer.Pause()
	case pomomo.TimerEnded:
		c.timer.Restart()
	}
}

func (c *Controller) Restart() {
	c.timer.Restart()
}

// SetTime forwards to the timer. Call Restart first when switching modes.
func (c *Controller) SetTime(seconds int) error {
	return c.timer.SetTime(seconds)
}

func (c *Controller) AddObserver(o timer.Observer) {
	c.timer.AddObserver(o)
}

func (c *Controller) Snapshot() pomomo.Snapshot {
	return c.timer.Snapshot()
}
