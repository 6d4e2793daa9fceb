// ABOUTME: Semantic color theme types for list rendering: Color, Palette, Theme
// ABOUTME: Color.Apply wraps a row in ANSI codes; Palette names each visual role of the list

package theme

// Color represents a terminal SGR sequence that styles text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the color code and a reset suffix.
// An empty color returns text unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a copy of c with bold prepended.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Palette holds the semantic colors of a list view.
type Palette struct {
	Primary   Color // row text
	Muted     Color // tree guides, empty placeholder
	Accent    Color // cursor marker
	Selection Color // selected row
	Match     Color // fuzzy-filter matched runes
	Directory Color // tree entries with children

	ScrollTrack Color
	ScrollThumb Color

	Header Color
	Footer Color
	Error  Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `yaml:"name"`
	Palette Palette `yaml:"-"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Primary:   NewColor("\x1b[0m"),
		Muted:     NewColor("\x1b[2m"),
		Accent:    NewColor("\x1b[38;5;208m"),
		Selection: NewColor("\x1b[7m"),
		Match:     NewColor("\x1b[1m\x1b[33m"),
		Directory: NewColor("\x1b[34m"),

		ScrollTrack: NewColor("\x1b[90m"),
		ScrollThumb: NewColor("\x1b[37m"),

		Header: NewColor("\x1b[1m"),
		Footer: NewColor("\x1b[2m"),
		Error:  NewColor("\x1b[31m"),
	}
}
