package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Action     key.Binding
	Work       key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Skip       key.Binding
	Restart    key.Binding
	Settings   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Action, k.Settings, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Action, k.Restart, k.Skip},
		{k.Work, k.ShortBreak, k.LongBreak},
		{k.Settings, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Action: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "start/pause"),
	),
	Work: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "pomodoro"),
	),
	ShortBreak: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "short break"),
	),
	LongBreak: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "long break"),
	),
	Skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type settingsKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
	Close  key.Binding
}

var settingsKeys = settingsKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous choice"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next choice"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}
