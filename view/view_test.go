package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benjamonnguyen/pomomo-tui"
)

type fakeTarget struct {
	clock        string
	progress     float64
	progressSets int
	label        string
	announcement string
}

func (f *fakeTarget) SetClock(text string) { f.clock = text }
func (f *fakeTarget) SetProgress(p float64) {
	f.progress = p
	f.progressSets++
}
func (f *fakeTarget) SetButtonLabel(label string) { f.label = label }
func (f *fakeTarget) Announce(msg string)         { f.announcement = msg }

func TestTimerView_Update(t *testing.T) {
	target := &fakeTarget{label: pomomo.LabelPause}
	v := New(target)

	v.Update(pomomo.Snapshot{Remaining: 65, Duration: 130, State: pomomo.TimerCounting})
	assert.Equal(t, "01:05", target.clock)
	assert.Equal(t, 0.5, target.progress)
	assert.Equal(t, pomomo.LabelPause, target.label)
	assert.Empty(t, target.announcement)
}

func TestTimerView_Ended(t *testing.T) {
	target := &fakeTarget{label: pomomo.LabelPause}
	v := New(target)

	v.Update(pomomo.Snapshot{Remaining: 0, Duration: 3, State: pomomo.TimerEnded})
	assert.Equal(t, "00:00", target.clock)
	assert.Equal(t, 1.0, target.progress)
	assert.Equal(t, pomomo.LabelRestart, target.label)
	assert.Equal(t, CompletedAnnouncement, target.announcement)

	// leaving Ended clears the live region
	v.Update(pomomo.Snapshot{Remaining: 3, Duration: 3, State: pomomo.TimerInitial})
	assert.Empty(t, target.announcement)
}

func TestTimerView_ZeroDurationSkipsProgress(t *testing.T) {
	target := &fakeTarget{}
	New(target).Update(pomomo.Snapshot{})
	assert.Equal(t, 0, target.progressSets)
	assert.Equal(t, "00:00", target.clock)
}

func TestTimerView_NilTarget(t *testing.T) {
	v := New(nil)
	assert.NotPanics(t, func() {
		v.Update(pomomo.Snapshot{Remaining: 1, Duration: 1, State: pomomo.TimerEnded})
		v.SetButtonLabel(pomomo.LabelStart)
	})
}

func TestTimerView_LabelFollowsState(t *testing.T) {
	target := &fakeTarget{}
	v := New(target)

	cases := []struct {
		state pomomo.TimerState
		label string
	}{
		{pomomo.TimerInitial, pomomo.LabelStart},
		{pomomo.TimerCounting, pomomo.LabelPause},
		{pomomo.TimerPaused, pomomo.LabelStart},
		{pomomo.TimerEnded, pomomo.LabelRestart},
	}
	for _, tc := range cases {
		v.Update(pomomo.Snapshot{Remaining: 1, Duration: 2, State: tc.state})
		assert.Equal(t, tc.label, target.label, tc.state.String())
		assert.Equal(t, tc.label, ButtonLabel(tc.state))
	}
}
