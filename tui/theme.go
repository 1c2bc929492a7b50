package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/benjamonnguyen/pomomo-tui"
)

var accents = map[pomomo.Colour]lipgloss.Color{
	pomomo.ColourRed:    lipgloss.Color("#F87070"),
	pomomo.ColourCyan:   lipgloss.Color("#70F3F8"),
	pomomo.ColourViolet: lipgloss.Color("#D881F8"),
}

const (
	muted      = lipgloss.Color("#D7E0FF")
	background = lipgloss.Color("#1E213F")
)

type styles struct {
	Accent       lipgloss.Color
	Spaced       bool
	Title        lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	Clock        lipgloss.Style
	Button       lipgloss.Style
	Announcement lipgloss.Style
	Counter      lipgloss.Style
	Modal        lipgloss.Style
	Label        lipgloss.Style
	Focused      lipgloss.Style
	Error        lipgloss.Style
}

// newStyles maps a theme onto terminal attributes. Terminals cannot switch
// typefaces, so each font becomes a text treatment for the clock.
func newStyles(t pomomo.Theme) styles {
	accent, ok := accents[t.Colour]
	if !ok {
		accent = accents[pomomo.DefaultColour]
	}

	clock := lipgloss.NewStyle().Foreground(muted).Padding(1, 4)
	switch t.Font {
	case pomomo.FontSansSerif:
		clock = clock.Bold(true)
	case pomomo.FontSerif:
		clock = clock.Italic(true)
	}

	return styles{
		Accent:       accent,
		Spaced:       t.Font == pomomo.FontMonospace,
		Title:        lipgloss.NewStyle().Bold(true).Foreground(muted),
		Tab:          lipgloss.NewStyle().Padding(0, 2).Foreground(muted),
		ActiveTab:    lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(background).Background(accent),
		Clock:        clock,
		Button:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Announcement: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Counter:      lipgloss.NewStyle().Faint(true),
		Modal:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		Label:        lipgloss.NewStyle().Width(14),
		Focused:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}
