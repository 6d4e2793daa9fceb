// ABOUTME: Styled single-region text component for headers, footers and status lines
// ABOUTME: Lines are truncated to the render width so the frame never wraps

package component

import (
	"strings"
	"sync"

	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

// Text renders static lines with an optional palette role.
type Text struct {
	mu    sync.Mutex
	lines []string
	style func(theme.Palette) theme.Color
}

// NewText creates a Text component with the given content.
func NewText(content string) *Text {
	return &Text{lines: strings.Split(content, "\n")}
}

// SetContent replaces the displayed text.
func (t *Text) SetContent(content string) {
	t.mu.Lock()
	t.lines = strings.Split(content, "\n")
	t.mu.Unlock()
}

// SetStyle selects the palette role used to draw the text. It is read
// from the current theme on every render.
func (t *Text) SetStyle(role func(theme.Palette) theme.Color) {
	t.mu.Lock()
	t.style = role
	t.mu.Unlock()
}

// Height returns the number of lines the text occupies.
func (t *Text) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}

// Render writes the text lines, each fitted to width.
func (t *Text) Render(out *tui.RenderBuffer, w int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var c theme.Color
	if t.style != nil {
		c = t.style(theme.Current().Palette)
	}
	for _, line := range t.lines {
		out.WriteLine(c.Apply(width.PadToWidth(line, w)))
	}
}

// Invalidate is a no-op; Text keeps no render cache.
func (t *Text) Invalidate() {}
