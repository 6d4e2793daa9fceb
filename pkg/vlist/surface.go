// ABOUTME: Render-surface contract: node attach/detach, positioning, stretch, signals
// ABOUTME: Any target (terminal rows, canvas sprites, widgets) can implement Surface

package vlist

import "time"

// Surface is the render target a List drives. Node creation and content
// binding go through Options.CreateHandler and Options.RenderHandler; the
// surface only places nodes and reports viewport geometry.
type Surface[N any] interface {
	// Viewport returns the current visible height.
	Viewport() int
	// SentinelSize returns the layout size of the stretch sentinel.
	SentinelSize() int
	// Attach adds a node to the surface.
	Attach(node N)
	// Detach removes a node from the surface.
	Detach(node N)
	// SetOffset positions a node.
	SetOffset(node N, x, y int)
	// SetStretch translates the sentinel so the scrollable range covers
	// the full virtual height.
	SetStretch(x, y int)
	// Listen registers l for scroll, resize and pointer signals and
	// returns a function that detaches it.
	Listen(l Listener) (cancel func())
}

// Listener receives surface signals. *List implements it.
type Listener interface {
	HandleScroll(offset int)
	HandleResize()
	HandlePointer(ev PointerEvent)
}

// Decorator is implemented by surfaces that draw a scrollbar.
type Decorator interface {
	SetSuppressed(suppressed bool)
	Update(offset, viewport, extent int)
}

// Button identifies the pointer button of a PointerEvent.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a press on the surface. Y is relative to the top of the
// viewport. Raw carries the originating host event.
type PointerEvent struct {
	X, Y   int
	Button Button
	Time   time.Time
	Raw    any
}
