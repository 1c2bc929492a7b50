package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/benjamonnguyen/pomomo-tui"
)

const (
	fieldWork = iota
	fieldShortBreak
	fieldLongBreak
	fieldFont
	fieldColour
	fieldCount
)

var fieldLabels = [fieldCount]string{"pomodoro", "short break", "long break", "font", "colour"}

// settingsForm edits durations in minutes and the theme. Focus cycles through
// the form fields only, so tab never escapes the modal.
type settingsForm struct {
	inputs [fieldFont]textinput.Model
	font   int
	colour int
	focus  int
	err    string
}

func newSettingsForm(d pomomo.Durations, t pomomo.Theme) settingsForm {
	f := settingsForm{}
	for i, v := range []int{d.Work, d.ShortBreak, d.LongBreak} {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 3
		in.Width = 4
		in.SetValue(strconv.Itoa(v))
		f.inputs[i] = in
	}
	f.font = indexOf(pomomo.Fonts, t.Font)
	f.colour = indexOf(pomomo.Colours, t.Colour)
	f.inputs[fieldWork].Focus()
	return f
}

func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return 0
}

func (f settingsForm) update(msg tea.KeyMsg) (settingsForm, tea.Cmd) {
	switch {
	case key.Matches(msg, settingsKeys.Next):
		return f.setFocus((f.focus + 1) % fieldCount)
	case key.Matches(msg, settingsKeys.Prev):
		return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
	}

	switch f.focus {
	case fieldFont:
		f.font = cycle(f.font, len(pomomo.Fonts), msg)
		return f, nil
	case fieldColour:
		f.colour = cycle(f.colour, len(pomomo.Colours), msg)
		return f, nil
	}

	if msg.Type == tea.KeySpace || (msg.Type == tea.KeyRunes && !onlyDigits(msg.Runes)) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f settingsForm) setFocus(i int) (settingsForm, tea.Cmd) {
	f.focus = i
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
			continue
		}
		f.inputs[j].Blur()
	}
	return f, cmd
}

func cycle(i, n int, msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, settingsKeys.Left):
		return (i + n - 1) % n
	case key.Matches(msg, settingsKeys.Right), msg.String() == " ":
		return (i + 1) % n
	}
	return i
}

func onlyDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// values parses the form. Range checks happen in the application.
func (f settingsForm) values() (work, shortBreak, longBreak int, theme pomomo.Theme, err error) {
	var mins [fieldFont]int
	for i, in := range f.inputs {
		v := strings.TrimSpace(in.Value())
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, 0, 0, pomomo.Theme{}, fmt.Errorf("%s: %q is not a number", fieldLabels[i], v)
		}
		mins[i] = n
	}
	theme = pomomo.Theme{Font: pomomo.Fonts[f.font], Colour: pomomo.Colours[f.colour]}
	return mins[fieldWork], mins[fieldShortBreak], mins[fieldLongBreak], theme, nil
}

func (f settingsForm) view(st styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Settings"))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		label := st.Label.Render(fieldLabels[i])
		if i == f.focus {
			label = st.Focused.Render(st.Label.Render(fieldLabels[i]))
		}
		b.WriteString(label)
		switch i {
		case fieldFont:
			b.WriteString(choices(pomomo.Fonts, f.font, i == f.focus, st))
		case fieldColour:
			b.WriteString(choices(pomomo.Colours, f.colour, i == f.focus, st))
		default:
			b.WriteString(f.inputs[i].View())
			b.WriteString(" min")
		}
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(st.Error.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.Counter.Render("tab: next • ←/→: choose • enter: apply • esc: close"))
	return st.Modal.Render(b.String())
}

func choices[T ~string](all []T, selected int, focused bool, st styles) string {
	parts := make([]string, len(all))
	for i, c := range all {
		if i == selected {
			s := "[" + string(c) + "]"
			if focused {
				s = st.Focused.Render(s)
			}
			parts[i] = s
			continue
		}
		parts[i] = " " + string(c) + " "
	}
	return strings.Join(parts, " ")
}
