package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/app"
	"github.com/benjamonnguyen/pomomo-tui/controller"
	"github.com/benjamonnguyen/pomomo-tui/timer"
	"github.com/benjamonnguyen/pomomo-tui/timer/timertest"
)

type fixture struct {
	model  Model
	app    *app.App
	timer  *timer.Timer
	sched  *timertest.Scheduler
	screen *Screen
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := log.New(io.Discard)
	d := pomomo.DefaultDurations()
	sched := timertest.New()
	tm := timer.New(d.Seconds(pomomo.WorkMode), timer.WithScheduler(sched), timer.WithLogger(logger))
	screen := NewScreen()
	ctrl := controller.New(tm, screen, logger)
	a, err := app.New(ctrl, d, app.WithLogger(logger))
	require.NoError(t, err)
	return &fixture{
		model:  New(a, screen, pomomo.DefaultTheme(), logger),
		app:    a,
		timer:  tm,
		sched:  sched,
		screen: screen,
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *fixture) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = f.model.Update(keyMsg(k))
		f.model = next.(Model)
	}
	return cmd
}

func (f *fixture) plain() string {
	return ansi.Strip(f.model.View())
}

func TestView_Initial(t *testing.T) {
	f := newFixture(t)
	out := f.plain()

	assert.Contains(t, out, "25:00")
	assert.Contains(t, out, "START")
	assert.Contains(t, out, "Pomodoro")
	assert.Contains(t, out, "Short Break")
	assert.NotContains(t, out, "Time's up!")
}

func TestActionKey_StartPause(t *testing.T) {
	f := newFixture(t)

	f.press(" ")
	assert.Equal(t, pomomo.TimerCounting, f.timer.State())
	assert.Contains(t, f.plain(), "PAUSE")

	f.sched.Advance(65 * time.Second)
	assert.Contains(t, f.plain(), "23:55")

	f.press("enter")
	assert.Equal(t, pomomo.TimerPaused, f.timer.State())
	assert.Contains(t, f.plain(), "START")
}

func TestCountdownEnds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.SetDurations(1, 5, 15))

	f.press(" ")
	f.sched.Advance(time.Minute)

	out := f.plain()
	assert.Contains(t, out, "00:00")
	assert.Contains(t, out, "RESTART")
	assert.Contains(t, out, "Time's up!")
	assert.Contains(t, out, "1 completed")

	f.press(" ")
	assert.Equal(t, pomomo.TimerInitial, f.timer.State())
	assert.Contains(t, f.plain(), "01:00")
}

func TestModeKeys(t *testing.T) {
	f := newFixture(t)
	f.press(" ")
	f.sched.Advance(10 * time.Second)

	f.press("2")
	assert.Equal(t, pomomo.ShortBreakMode, f.app.Mode())
	assert.Equal(t, pomomo.TimerInitial, f.timer.State())
	assert.Contains(t, f.plain(), "05:00")

	f.press("3")
	assert.Contains(t, f.plain(), "15:00")

	f.press("n")
	assert.Equal(t, pomomo.WorkMode, f.app.Mode())
	assert.Contains(t, f.plain(), "25:00")
}

func TestRestartKey(t *testing.T) {
	f := newFixture(t)
	f.press(" ")
	f.sched.Advance(30 * time.Second)

	f.press("r")
	assert.Equal(t, pomomo.TimerInitial, f.timer.State())
	assert.Equal(t, 1500, f.timer.Remaining())
	assert.Equal(t, 0, f.sched.Pending())
}

func TestQuit(t *testing.T) {
	f := newFixture(t)
	cmd := f.press("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSettings_Submit(t *testing.T) {
	f := newFixture(t)

	f.press("s")
	require.True(t, f.model.showSettings)
	assert.Contains(t, f.plain(), "Settings")

	// work field is focused and prefilled with 25
	f.press("backspace", "backspace", "5", "0")
	f.press("tab", "tab", "tab") // font
	f.press("right")
	f.press("tab") // colour
	f.press("right", "right")
	f.press("enter")

	assert.False(t, f.model.showSettings)
	assert.Equal(t, 50, f.app.Durations().Work)
	assert.Equal(t, 3000, f.timer.Remaining())
	assert.Equal(t, pomomo.Theme{Font: pomomo.FontSerif, Colour: pomomo.ColourViolet}, f.model.Theme())
	assert.Contains(t, f.plain(), "50:00")
}

func TestSettings_InvalidKeepsModalOpen(t *testing.T) {
	f := newFixture(t)

	f.press("s", "tab")
	f.press("backspace", "0")
	f.press("enter")

	assert.True(t, f.model.showSettings)
	assert.Contains(t, f.plain(), "invalid duration")
	assert.Equal(t, 5, f.app.Durations().ShortBreak)
}

func TestSettings_RejectsLetters(t *testing.T) {
	f := newFixture(t)

	f.press("s", "x", "y")
	f.press("enter")

	assert.False(t, f.model.showSettings)
	assert.Equal(t, 25, f.app.Durations().Work)
}

func TestSettings_EscClosesWithoutChange(t *testing.T) {
	f := newFixture(t)

	f.press("s", "backspace", "backspace", "9")
	f.press("esc")

	assert.False(t, f.model.showSettings)
	assert.Equal(t, 25, f.app.Durations().Work)
	assert.Equal(t, pomomo.DefaultTheme(), f.model.Theme())
}

func TestSettings_FocusStaysInModal(t *testing.T) {
	f := newFixture(t)
	f.press("s")

	for i := 0; i < fieldCount; i++ {
		f.press("tab")
	}
	assert.Equal(t, fieldWork, f.model.settings.focus)

	f.press("shift+tab")
	assert.Equal(t, fieldColour, f.model.settings.focus)
	assert.True(t, f.model.showSettings)
}

func TestSettings_ThemeDoesNotTouchTimer(t *testing.T) {
	f := newFixture(t)
	f.press(" ")
	f.sched.Advance(5 * time.Second)

	f.model.UpdateTheme(pomomo.Theme{Font: pomomo.FontMonospace, Colour: pomomo.ColourCyan})

	assert.Equal(t, pomomo.TimerCounting, f.timer.State())
	assert.Equal(t, 1495, f.timer.Remaining())
	assert.Contains(t, f.plain(), "2 4 : 5 5")
}

func TestScreen_SignalsRedraw(t *testing.T) {
	s := NewScreen()
	s.SetClock("01:00")
	s.SetClock("00:59")

	msg := s.waitForRedraw()()
	assert.IsType(t, redrawMsg{}, msg)
	assert.Equal(t, "00:59", s.state().Clock)

	s.Close()
	assert.Nil(t, s.waitForRedraw()())
}

func TestView_NoAnnouncementWhileCounting(t *testing.T) {
	f := newFixture(t)
	f.press(" ")
	f.sched.Advance(time.Second)
	assert.False(t, strings.Contains(f.plain(), "Time's up!"))
}

func TestExitErr(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, exitErr(ctx, nil))
	assert.NoError(t, exitErr(ctx, tea.ErrProgramKilled))
	assert.NoError(t, exitErr(ctx, fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled)))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.NoError(t, exitErr(cancelled, context.Canceled))
	assert.Error(t, exitErr(ctx, context.Canceled))

	err := exitErr(ctx, errors.New("no tty"))
	assert.ErrorContains(t, err, "failed to run tui: no tty")
}

func TestRun_CancelledContextIsCleanExit(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, f.model, tea.WithInput(nil), tea.WithOutput(io.Discard))
	assert.NoError(t, err)
}
