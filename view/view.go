// Package view projects timer snapshots onto render targets.
package view

import (
	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/timer"
)

const CompletedAnnouncement = "Time's up!"

// Target receives rendered values. Implementations must tolerate being
// called from the timer's callback goroutine.
type Target interface {
	SetClock(text string)
	SetProgress(fraction float64)
	SetButtonLabel(label string)
	// Announce sets the live-region text; "" clears it.
	Announce(msg string)
}

type NopTarget struct{}

func (NopTarget) SetClock(string)       {}
func (NopTarget) SetProgress(float64)   {}
func (NopTarget) SetButtonLabel(string) {}
func (NopTarget) Announce(string)       {}

// TimerView renders whatever the timer last published. It holds no state
// beyond its target.
type TimerView struct {
	target Target
}

var _ timer.Observer = (*TimerView)(nil)

func New(target Target) *TimerView {
	if target == nil {
		target = NopTarget{}
	}
	return &TimerView{target: target}
}

// Update runs inside the timer's notification, so the label it writes always
// matches the state that produced s.
func (v *TimerView) Update(s pomomo.Snapshot) {
	v.target.SetClock(pomomo.FormatClock(s.Remaining))
	if s.Duration > 0 {
		v.target.SetProgress(s.Progress())
	}
	v.target.SetButtonLabel(ButtonLabel(s.State))
	if s.State == pomomo.TimerEnded {
		v.target.Announce(CompletedAnnouncement)
		return
	}
	v.target.Announce("")
}

// ButtonLabel is the action the button performs from state.
func ButtonLabel(state pomomo.TimerState) string {
	switch state {
	case pomomo.TimerCounting:
		return pomomo.LabelPause
	case pomomo.TimerEnded:
		return pomomo.LabelRestart
	default:
		return pomomo.LabelStart
	}
}

func (v *TimerView) SetButtonLabel(label string) {
	v.target.SetButtonLabel(label)
}
