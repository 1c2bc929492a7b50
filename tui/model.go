// Package tui renders the timer in the terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/app"
)

const defaultWidth = 48

type Model struct {
	app    *app.App
	screen *Screen
	l      *log.Logger

	theme    pomomo.Theme
	styles   styles
	help     help.Model
	progress progress.Model
	width    int

	showSettings bool
	settings     settingsForm
	status       string
}

func New(a *app.App, screen *Screen, theme pomomo.Theme, logger *log.Logger) Model {
	if a == nil {
		panic("missing app")
	}
	if screen == nil {
		panic("missing screen")
	}
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		app:    a,
		screen: screen,
		l:      logger,
		help:   help.New(),
		width:  defaultWidth,
	}
	m.UpdateTheme(theme)
	return m
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is a
// clean exit.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	defer m.screen.Close()
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return exitErr(ctx, err)
}

func exitErr(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return nil
	}
	return fmt.Errorf("failed to run tui: %w", err)
}

// UpdateTheme restyles the view. It never touches the timer.
func (m *Model) UpdateTheme(t pomomo.Theme) {
	m.theme = t
	m.styles = newStyles(t)
	m.progress = progress.New(
		progress.WithSolidFill(string(m.styles.Accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(m.width),
	)
}

func (m Model) Theme() pomomo.Theme {
	return m.theme
}

func (m Model) Init() tea.Cmd {
	return m.screen.waitForRedraw()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case redrawMsg:
		return m, m.screen.waitForRedraw()
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width-4, 10), defaultWidth)
		m.progress.Width = m.width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.showSettings {
			return m.updateSettings(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Action):
		m.app.Press()
	case key.Matches(msg, keys.Restart):
		m.app.Restart()
	case key.Matches(msg, keys.Work):
		m.changeMode(pomomo.WorkMode)
	case key.Matches(msg, keys.ShortBreak):
		m.changeMode(pomomo.ShortBreakMode)
	case key.Matches(msg, keys.LongBreak):
		m.changeMode(pomomo.LongBreakMode)
	case key.Matches(msg, keys.Skip):
		if err := m.app.Skip(); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, keys.Settings):
		m.showSettings = true
		m.settings = newSettingsForm(m.app.Durations(), m.theme)
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) changeMode(mode pomomo.Mode) {
	if err := m.app.ChangeMode(mode); err != nil {
		m.l.Error("failed to change mode", "mode", mode, "err", err)
		m.status = err.Error()
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, settingsKeys.Close):
		m.showSettings = false
		return m, nil
	case key.Matches(msg, settingsKeys.Submit):
		work, shortBreak, longBreak, theme, err := m.settings.values()
		if err != nil {
			m.settings.err = err.Error()
			return m, nil
		}
		if err := m.app.SetDurations(work, shortBreak, longBreak); err != nil {
			m.settings.err = err.Error()
			return m, nil
		}
		m.UpdateTheme(theme)
		m.showSettings = false
		m.l.Debug("settings applied", "font", theme.Font, "colour", theme.Colour)
		return m, nil
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.settings, cmd = m.settings.update(msg)
	return m, cmd
}

func (m Model) View() string {
	st := m.styles
	if m.showSettings {
		return m.settings.view(st)
	}
	s := m.screen.state()

	var b strings.Builder
	b.WriteString(st.Title.Render("pomomo"))
	b.WriteString("\n\n")
	b.WriteString(m.tabs())
	b.WriteString("\n")

	clock := s.Clock
	if st.Spaced {
		clock = strings.Join(strings.Split(clock, ""), " ")
	}
	b.WriteString(st.Clock.Render(clock))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(s.Progress))
	b.WriteString("\n\n")
	b.WriteString(st.Button.Render(strings.ToUpper(s.Label)))
	b.WriteString("\n")
	if s.Announcement != "" {
		b.WriteString(st.Announcement.Render(s.Announcement))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Counter.Render(fmt.Sprintf("%d completed • long break every %d", m.app.Completed(), m.app.Intervals())))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(st.Error.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) tabs() string {
	active := m.app.Mode()
	tabs := make([]string, len(pomomo.Modes))
	for i, mode := range pomomo.Modes {
		if mode == active {
			tabs[i] = m.styles.ActiveTab.Render(mode.String())
			continue
		}
		tabs[i] = m.styles.Tab.Render(mode.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
