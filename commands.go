package pomomo

import (
	"errors"
	"fmt"
)

const (
	WorkOption       = "work"
	ShortBreakOption = "short"
	LongBreakOption  = "long"
	IntervalsOption  = "intervals"
	FontOption       = "font"
	ColourOption     = "colour"
)

// IntOption describes a bounded integer setting shared by the CLI flags and
// the settings panel.
type IntOption struct {
	Name        string
	Description string
	Default     int
	MinValue    int
	MaxValue    int
	// Err is wrapped by Check so callers can match the failing setting.
	Err         error
}

var DurationOptions = []IntOption{
	{
		Name:        WorkOption,
		Description: fmt.Sprintf("pomodoro duration in minutes (Default: %d)", DefaultWorkMinutes),
		Default:     DefaultWorkMinutes,
		MinValue:    1,
		MaxValue:    MaxDurationMinutes,
		Err:         ErrInvalidDuration,
	},
	{
		Name:        ShortBreakOption,
		Description: fmt.Sprintf("short break duration in minutes (Default: %d)", DefaultShortBreakMinutes),
		Default:     DefaultShortBreakMinutes,
		MinValue:    1,
		MaxValue:    MaxDurationMinutes,
		Err:         ErrInvalidDuration,
	},
	{
		Name:        LongBreakOption,
		Description: fmt.Sprintf("long break duration in minutes (Default: %d)", DefaultLongBreakMinutes),
		Default:     DefaultLongBreakMinutes,
		MinValue:    1,
		MaxValue:    MaxDurationMinutes,
		Err:         ErrInvalidDuration,
	},
}

var IntervalsIntOption = IntOption{
	Name:        IntervalsOption,
	Description: fmt.Sprintf("number of pomodoros between long breaks (Default: %d)", DefaultIntervals),
	Default:     DefaultIntervals,
	MinValue:    1,
	MaxValue:    20,
	Err:         ErrInvalidIntervals,
}

func (o IntOption) Check(v int) error {
	if v < o.MinValue || v > o.MaxValue {
		err := o.Err
		if err == nil {
			err = errors.New("out of range")
		}
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", err, o.Name, o.MinValue, o.MaxValue, v)
	}
	return nil
}
