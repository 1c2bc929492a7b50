package pomomo

import (
	"fmt"
	"strings"
)

type Font string

const (
	FontSerif     Font = "serif"
	FontSansSerif Font = "sans-serif"
	FontMonospace Font = "monospace"
)

var Fonts = []Font{FontSansSerif, FontSerif, FontMonospace}

type Colour string

const (
	ColourRed    Colour = "red"
	ColourCyan   Colour = "cyan"
	ColourViolet Colour = "violet"
)

var Colours = []Colour{ColourRed, ColourCyan, ColourViolet}

const (
	DefaultFont   = FontSansSerif
	DefaultColour = ColourRed
)

type Theme struct {
	Font   Font
	Colour Colour
}

func DefaultTheme() Theme {
	return Theme{Font: DefaultFont, Colour: DefaultColour}
}

func ParseFont(s string) (Font, error) {
	f := Font(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fonts {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown font %q", ErrInvalidTheme, s)
}

func ParseColour(s string) (Colour, error) {
	c := Colour(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Colours {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown colour %q", ErrInvalidTheme, s)
}
