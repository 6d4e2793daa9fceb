// ABOUTME: Vertical scrollbar geometry and drawing for list views
// ABOUTME: Thumb size is proportional to viewport/extent with a one-cell minimum

package component

import "github.com/mauromedda/pi-vlist/pkg/tui/theme"

// Scrollbar draws a one-column track with a proportional thumb.
type Scrollbar struct {
	Track rune
	Thumb rune
}

// NewScrollbar returns a scrollbar using box-drawing glyphs.
func NewScrollbar() *Scrollbar {
	return &Scrollbar{Track: '│', Thumb: '┃'}
}

// Needed reports whether content overflows the viewport.
func Needed(viewport, extent int) bool {
	return viewport > 0 && extent > viewport
}

// ThumbSpan returns the first cell and length of the thumb on a track of
// height cells.
func ThumbSpan(offset, viewport, extent, height int) (pos, size int) {
	if height <= 0 || !Needed(viewport, extent) {
		return 0, height
	}
	size = min(max(1, height*viewport/extent), height)
	maxScroll := extent - viewport
	offset = min(max(offset, 0), maxScroll)
	pos = (height - size) * offset / maxScroll
	return pos, size
}

// Cells returns height styled cells, top to bottom.
func (s *Scrollbar) Cells(offset, viewport, extent, height int) []string {
	if height <= 0 {
		return nil
	}
	p := theme.Current().Palette
	pos, size := ThumbSpan(offset, viewport, extent, height)
	track := p.ScrollTrack.Apply(string(s.Track))
	thumb := p.ScrollThumb.Apply(string(s.Thumb))

	cells := make([]string, height)
	for i := range cells {
		if i >= pos && i < pos+size {
			cells[i] = thumb
		} else {
			cells[i] = track
		}
	}
	return cells
}
