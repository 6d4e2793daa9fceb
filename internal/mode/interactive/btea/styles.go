// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Maps parsed SGR state onto lipgloss styles for the header, footer and help box

package btea

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is keyed by theme pointer identity.
var cachedStyles atomic.Pointer[themeStylesEntry]

// lipglossColor converts raw SGR colour parameters ("31", "101",
// "38;5;208", "48;2;10;20;30") to a lipgloss colour. ok is false when
// params carry no colour.
func lipglossColor(params string) (lipgloss.Color, bool) {
	if params == "" {
		return "", false
	}
	parts := strings.Split(params, ";")
	switch {
	case len(parts) == 3 && parts[1] == "5":
		return lipgloss.Color(parts[2]), true
	case len(parts) == 5 && parts[1] == "2":
		var rgb [3]int
		for i, p := range parts[2:] {
			n, err := strconv.Atoi(p)
			if err != nil {
				return "", false
			}
			rgb[i] = min(max(n, 0), 255)
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), true
	case len(parts) == 1:
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return "", false
		}
		switch {
		case n >= 30 && n <= 37:
			return lipgloss.Color(strconv.Itoa(n - 30)), true
		case n >= 40 && n <= 47:
			return lipgloss.Color(strconv.Itoa(n - 40)), true
		case n >= 90 && n <= 97:
			return lipgloss.Color(strconv.Itoa(n - 90 + 8)), true
		case n >= 100 && n <= 107:
			return lipgloss.Color(strconv.Itoa(n - 100 + 8)), true
		}
	}
	return "", false
}

// colorToStyle builds a lipgloss.Style from a raw ANSI escape code string.
func colorToStyle(code string) lipgloss.Style {
	sgr := width.ParseSGR(code)
	s := lipgloss.NewStyle().
		Bold(sgr.Bold).
		Faint(sgr.Dim).
		Italic(sgr.Italic).
		Underline(sgr.Underline).
		Reverse(sgr.Reverse)
	if c, ok := lipglossColor(sgr.FG); ok {
		s = s.Foreground(c)
	}
	if c, ok := lipglossColor(sgr.BG); ok {
		s = s.Background(c)
	}
	return s
}

// ThemeStyles holds pre-built lipgloss styles for the palette roles the
// Bubble Tea front-end draws itself.
type ThemeStyles struct {
	Primary   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Selection lipgloss.Style
	Match     lipgloss.Style
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Error     lipgloss.Style

	HelpBox lipgloss.Style
}

// Styles returns ThemeStyles for the current theme, rebuilding only when
// the theme changed since the last call.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	accent := colorToStyle(p.Accent.Code())
	return ThemeStyles{
		Primary:   colorToStyle(p.Primary.Code()),
		Muted:     colorToStyle(p.Muted.Code()),
		Accent:    accent,
		Selection: colorToStyle(p.Selection.Code()),
		Match:     colorToStyle(p.Match.Code()),
		Header:    colorToStyle(p.Header.Code()),
		Footer:    colorToStyle(p.Footer.Code()),
		Error:     colorToStyle(p.Error.Code()),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent.GetForeground()).
			Padding(0, 1),
	}
}
