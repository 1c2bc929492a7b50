package pomomo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	testCases := []struct {
		total int
		want  string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{59, "00:59"},
		{60, "01:00"},
		{65, "01:05"},
		{600, "10:00"},
		{25 * 60, "25:00"},
		{-3, "00:00"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatClock(tc.total), "FormatClock(%d)", tc.total)
	}
}

func TestClockParts(t *testing.T) {
	assert.Equal(t, 1, MinutesPart(65))
	assert.Equal(t, 5, SecondsPart(65))
	assert.Equal(t, 0, MinutesPart(59))
	assert.Equal(t, 0, SecondsPart(600))
}

func TestSnapshotProgress(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{Remaining: 10, Duration: 10}.Progress())
	assert.Equal(t, 0.5, Snapshot{Remaining: 5, Duration: 10}.Progress())
	assert.Equal(t, 1.0, Snapshot{Remaining: 0, Duration: 10}.Progress())
	// zero duration is guarded rather than dividing by zero
	assert.Equal(t, 0.0, Snapshot{}.Progress())
}
