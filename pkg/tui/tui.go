// ABOUTME: Full-screen TUI engine: line-diff rendering with absolute cursor moves
// ABOUTME: Buffered channel coalesces render requests; CSI 2026 synchronized output

package tui

import (
	"io"
	"strconv"
	"strings"
	"sync"
)

// TUI owns the screen: it renders the root container into exactly
// height lines and rewrites only the rows that changed.
type TUI struct {
	container *Container
	writer    io.Writer

	mu       sync.Mutex
	width    int
	height   int
	previous []string
	overlays []Overlay
	renderCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool
}

// New creates a TUI writing to w with the given dimensions.
func New(w io.Writer, termWidth, termHeight int) *TUI {
	return &TUI{
		container: NewContainer(),
		writer:    w,
		width:     termWidth,
		height:    termHeight,
		renderCh:  make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Container returns the root container for adding components.
func (t *TUI) Container() *Container {
	return t.container
}

// Size returns the current dimensions.
func (t *TUI) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSize updates the dimensions, lays the root container out and forces
// a full redraw.
func (t *TUI) SetSize(w, h int) {
	t.mu.Lock()
	t.width = w
	t.height = h
	t.previous = nil
	t.mu.Unlock()
	t.container.SetSize(w, h)
	t.container.Invalidate()
	t.RequestRender()
}

// PushOverlay adds a modal overlay on top of the content.
func (t *TUI) PushOverlay(o Overlay) {
	t.mu.Lock()
	t.overlays = append(t.overlays, o)
	t.mu.Unlock()
	t.RequestRender()
}

// PopOverlay removes the topmost overlay and reports whether one existed.
func (t *TUI) PopOverlay() bool {
	t.mu.Lock()
	n := len(t.overlays)
	if n > 0 {
		t.overlays = t.overlays[:n-1]
	}
	t.mu.Unlock()
	t.RequestRender()
	return n > 0
}

// HasOverlay reports whether an overlay is showing.
func (t *TUI) HasOverlay() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.overlays) > 0
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default:
	}
}

// Start begins the render loop in a goroutine. Call Stop to terminate.
func (t *TUI) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	go t.renderLoop()
}

// Stop terminates the render loop. Safe to call multiple times.
func (t *TUI) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
		close(t.stopCh)
	})
}

// RenderOnce performs a single synchronous render.
func (t *TUI) RenderOnce() {
	t.render()
}

func (t *TUI) renderLoop() {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.renderCh:
			t.render()
		}
	}
}

func (t *TUI) render() {
	t.mu.Lock()
	w, h := t.width, t.height
	prev := t.previous
	overlays := append([]Overlay(nil), t.overlays...)
	t.mu.Unlock()

	if w <= 0 || h <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	t.container.Render(buf, w)
	buf.Fit(h)
	compositeOverlays(buf, overlays, w, h)

	if out := diffFrame(prev, buf.Lines); out != "" {
		_, _ = io.WriteString(t.writer, "\x1b[?2026h\x1b[?25l"+out+"\x1b[?2026l")
	}

	saved := prev
	if cap(saved) >= len(buf.Lines) {
		saved = saved[:len(buf.Lines)]
	} else {
		saved = make([]string, len(buf.Lines))
	}
	copy(saved, buf.Lines)

	t.mu.Lock()
	t.previous = saved
	t.mu.Unlock()
}

// diffFrame returns the escape sequences that turn prev into curr. A nil
// prev clears the screen and paints every row.
func diffFrame(prev, curr []string) string {
	var b strings.Builder
	var num [20]byte
	if prev == nil {
		b.WriteString("\x1b[H\x1b[2J")
	}
	for i, line := range curr {
		if prev != nil && i < len(prev) && prev[i] == line {
			continue
		}
		b.WriteString("\x1b[")
		b.Write(strconv.AppendInt(num[:0], int64(i+1), 10))
		b.WriteString(";1H\x1b[2K")
		b.WriteString(line)
	}
	return b.String()
}
