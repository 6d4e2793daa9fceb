// ABOUTME: Overlay types for modal panels rendered on top of the list
// ABOUTME: Supports centered, top-anchored, and bottom-anchored positioning

package tui

// OverlayPosition defines where an overlay is rendered.
type OverlayPosition int

const (
	OverlayCenter OverlayPosition = iota
	OverlayTop
	OverlayBottom
)

// Overlay is a component composited over the main container's lines.
type Overlay struct {
	Component Component
	Position  OverlayPosition
	Width     int // 0 means use terminal width
	Height    int // 0 means auto-size from render output
}

// compositeOverlays replaces rows of buf with each overlay's lines.
// buf must already hold h lines.
func compositeOverlays(buf *RenderBuffer, overlays []Overlay, w, h int) {
	for _, o := range overlays {
		ob := AcquireBuffer()
		ow := o.Width
		if ow <= 0 || ow > w {
			ow = w
		}
		o.Component.Render(ob, ow)

		oh := min(ob.Len(), h)
		if o.Height > 0 && oh > o.Height {
			oh = o.Height
		}

		var top int
		switch o.Position {
		case OverlayCenter:
			top = (h - oh) / 2
		case OverlayTop:
			top = 0
		case OverlayBottom:
			top = h - oh
		}
		top = max(top, 0)

		for i := 0; i < oh && top+i < len(buf.Lines); i++ {
			buf.Lines[top+i] = ob.Lines[i]
		}
		ReleaseBuffer(ob)
	}
}
