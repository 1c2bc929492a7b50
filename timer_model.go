package pomomo

import "fmt"

type TimerState uint8

const (
	TimerInitial TimerState = iota
	TimerCounting
	TimerPaused
	TimerEnded
)

func (s TimerState) String() string {
	switch s {
	case TimerInitial:
		return "initial"
	case TimerCounting:
		return "counting"
	case TimerPaused:
		return "paused"
	case TimerEnded:
		return "ended"
	default:
		return fmt.Sprintf("TimerState(%d)", uint8(s))
	}
}

// Action button labels.
const (
	LabelStart   = "start"
	LabelPause   = "pause"
	LabelRestart = "restart"
)

// Snapshot is the state a timer publishes to its observers. Remaining and
// Duration are whole seconds.
type Snapshot struct {
	Remaining int
	Duration  int
	State     TimerState
}

// Progress is the elapsed fraction of the countdown in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	p := 1 - float64(s.Remaining)/float64(s.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
