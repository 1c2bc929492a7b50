package pomomo

import "fmt"

const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultIntervals         = 4

	MaxDurationMinutes = 240
)

// Durations holds the configured length of each mode in minutes.
type Durations struct {
	Work, ShortBreak, LongBreak int
}

func DefaultDurations() Durations {
	return Durations{
		Work:       DefaultWorkMinutes,
		ShortBreak: DefaultShortBreakMinutes,
		LongBreak:  DefaultLongBreakMinutes,
	}
}

func (d Durations) Validate() error {
	for _, m := range Modes {
		if v := d.For(m); v <= 0 || v > MaxDurationMinutes {
			return fmt.Errorf("%w: %s must be between 1 and %d minutes, got %d", ErrInvalidDuration, m, MaxDurationMinutes, v)
		}
	}
	return nil
}

func (d Durations) For(m Mode) int {
	switch m {
	case WorkMode:
		return d.Work
	case ShortBreakMode:
		return d.ShortBreak
	case LongBreakMode:
		return d.LongBreak
	default:
		return 0
	}
}

func (d Durations) Seconds(m Mode) int {
	return d.For(m) * 60
}
