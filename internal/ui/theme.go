package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the hex colours used to draw a maze.
type Theme struct {
	Wall   string
	Path   string
	Player string
	Exit   string
	Timer  string
}

// DefaultTheme mirrors the browser version: grey walls, white paths,
// a blue player, a red exit and a red timer.
func DefaultTheme() Theme {
	return Theme{
		Wall:   "#5A5A5A",
		Path:   "#FFFFFF",
		Player: "#3355FF",
		Exit:   "#FF0000",
		Timer:  "#FF0000",
	}
}

// Styles are the resolved tcell styles for a theme.
type Styles struct {
	Wall   tcell.Style
	Path   tcell.Style
	Player tcell.Style
	Exit   tcell.Style
	Timer  tcell.Style
	Text   tcell.Style
}

// Styles parses every colour in the theme.
func (t Theme) Styles() (Styles, error) {
	var colors [5]tcell.Color
	for i, hex := range []string{t.Wall, t.Path, t.Player, t.Exit, t.Timer} {
		c, err := ParseHexColor(hex)
		if err != nil {
			return Styles{}, err
		}
		colors[i] = c
	}

	base := tcell.StyleDefault
	return Styles{
		Wall:   base.Foreground(colors[0]),
		Path:   base.Foreground(colors[1]),
		Player: base.Foreground(colors[2]).Bold(true),
		Exit:   base.Foreground(colors[3]).Bold(true),
		Timer:  base.Foreground(colors[4]).Bold(true),
		Text:   base.Foreground(tcell.ColorWhite),
	}, nil
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}

	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
