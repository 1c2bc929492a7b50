package pomomo

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Mode uint8

const (
	_ Mode = iota
	WorkMode
	ShortBreakMode
	LongBreakMode
)

var Modes = []Mode{WorkMode, ShortBreakMode, LongBreakMode}

func (m Mode) String() string {
	switch m {
	case WorkMode:
		return "Pomodoro"
	case ShortBreakMode:
		return "Short Break"
	case LongBreakMode:
		return "Long Break"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func (m Mode) Valid() bool {
	return m >= WorkMode && m <= LongBreakMode
}

// ParseMode accepts the option names used by flags and config files.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work", "pomodoro":
		return WorkMode, nil
	case "short", "short_break", "short-break":
		return ShortBreakMode, nil
	case "long", "long_break", "long-break":
		return LongBreakMode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type IntervalID string

// IntervalRecord is a countdown that ran to zero.
type IntervalRecord struct {
	Mode        Mode
	Duration    time.Duration
	CompletedAt time.Time
}

type ExistingIntervalRecord struct {
	ExistingRecord[IntervalID]
	IntervalRecord
}

type IntervalRepo interface {
	InsertInterval(context.Context, IntervalRecord) (ExistingIntervalRecord, error)
	GetInterval(ctx context.Context, id IntervalID) (ExistingIntervalRecord, error)
	ListIntervals(ctx context.Context, since time.Time) ([]ExistingIntervalRecord, error)
	CountIntervals(ctx context.Context, mode Mode, since time.Time) (int, error)
}

// CompletedInterval is published by the application when a countdown ends.
type CompletedInterval struct {
	Mode               Mode
	Duration           time.Duration
	CompletedAt        time.Time
	CompletedPomodoros int
}

func (c CompletedInterval) Record() IntervalRecord {
	return IntervalRecord{
		Mode:        c.Mode,
		Duration:    c.Duration,
		CompletedAt: c.CompletedAt,
	}
}
