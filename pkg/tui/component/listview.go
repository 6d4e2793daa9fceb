// ABOUTME: ListView: a terminal Surface for the vlist engine plus keyboard and mouse input
// ABOUTME: Draws attached rows at (row.y - scroll), a scrollbar column, and the selection

package component

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/key"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
	"github.com/mauromedda/pi-vlist/pkg/vlist"
)

const defaultWheelStep = 3

var (
	_ vlist.Surface[*Row] = (*ListView)(nil)
	_ vlist.Decorator     = (*ListView)(nil)
	_ tui.Component       = (*ListView)(nil)
	_ tui.InputHandler    = (*ListView)(nil)
	_ tui.Sized           = (*ListView)(nil)
)

// ListView is a fixed-height region of the screen driven by a
// vlist.List. One terminal line is one surface unit, so an item of
// height 2 occupies two lines.
//
// The engine calls the Surface and Decorator methods with its own lock
// held. ListView never calls the engine while holding v.mu.
type ListView struct {
	mu sync.Mutex

	itemHeight int
	width      int
	height     int
	top        int

	rows    []*Row
	nextID  int
	scroll  int
	extent  int
	stretch int

	suppressed  bool
	selected    int
	bar         *Scrollbar
	placeholder string
	wheelStep   int

	listener   vlist.Listener
	onChange   func()
	onActivate func(index int)
	now        func() time.Time
}

// NewListView creates a view for items itemHeight lines tall.
func NewListView(itemHeight int) *ListView {
	return &ListView{
		itemHeight:  max(itemHeight, 1),
		bar:         NewScrollbar(),
		placeholder: "(empty)",
		wheelStep:   defaultWheelStep,
		now:         time.Now,
	}
}

// NewRow is the engine's create handler for this view.
func (v *ListView) NewRow() *Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	r := &Row{id: v.nextID, index: -1, mu: &v.mu}
	v.nextID++
	return r
}

// SetOrigin sets the screen row of the view's first line so mouse
// reports can be translated.
func (v *ListView) SetOrigin(top int) {
	v.mu.Lock()
	v.top = top
	v.mu.Unlock()
}

// SetPlaceholder sets the line shown when the list is empty.
func (v *ListView) SetPlaceholder(s string) {
	v.mu.Lock()
	v.placeholder = s
	v.mu.Unlock()
}

// SetWheelStep sets how many lines one wheel tick scrolls.
func (v *ListView) SetWheelStep(n int) {
	v.mu.Lock()
	v.wheelStep = max(n, 1)
	v.mu.Unlock()
}

// SetOnChange registers fn to run whenever the view needs repainting.
func (v *ListView) SetOnChange(fn func()) {
	v.mu.Lock()
	v.onChange = fn
	v.mu.Unlock()
}

// SetOnActivate registers fn to run when Enter is pressed.
func (v *ListView) SetOnActivate(fn func(index int)) {
	v.mu.Lock()
	v.onActivate = fn
	v.mu.Unlock()
}

// Selected returns the selected logical index.
func (v *ListView) Selected() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// Size returns the view's dimensions.
func (v *ListView) Size() (w, h int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// Stretch returns the last sentinel position set by the engine.
func (v *ListView) Stretch() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stretch
}

// --- vlist.Surface ---

// Viewport returns the view height in lines.
func (v *ListView) Viewport() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.height
}

// SentinelSize is one line.
func (v *ListView) SentinelSize() int { return 1 }

// Attach adds a row to the view.
func (v *ListView) Attach(r *Row) {
	v.mu.Lock()
	v.rows = append(v.rows, r)
	v.mu.Unlock()
}

// Detach removes a row from the view.
func (v *ListView) Detach(r *Row) {
	v.mu.Lock()
	if i := slices.Index(v.rows, r); i >= 0 {
		v.rows = slices.Delete(v.rows, i, i+1)
	}
	v.mu.Unlock()
}

// SetOffset places a row on the virtual axis.
func (v *ListView) SetOffset(r *Row, _, y int) {
	v.mu.Lock()
	r.y = y
	v.mu.Unlock()
}

// SetStretch records the sentinel position.
func (v *ListView) SetStretch(_, y int) {
	v.mu.Lock()
	v.stretch = y
	v.mu.Unlock()
}

// Listen registers the engine for scroll, resize and pointer signals.
func (v *ListView) Listen(l vlist.Listener) func() {
	v.mu.Lock()
	v.listener = l
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		if v.listener == l {
			v.listener = nil
		}
		v.mu.Unlock()
	}
}

// --- vlist.Decorator ---

// SetSuppressed hides or shows the scrollbar column.
func (v *ListView) SetSuppressed(suppressed bool) {
	v.mu.Lock()
	v.suppressed = suppressed
	v.mu.Unlock()
}

// Update receives the engine's scroll state after every render.
func (v *ListView) Update(offset, viewport, extent int) {
	v.mu.Lock()
	v.scroll = offset
	v.extent = extent
	if n := v.lenLocked(); n == 0 {
		v.selected = 0
	} else {
		v.selected = min(v.selected, n-1)
	}
	fn := v.onChange
	v.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// --- tui.Sized ---

// SetSize resizes the view and signals the engine when the height changed.
func (v *ListView) SetSize(w, h int) {
	v.mu.Lock()
	changed := h != v.height
	v.width = w
	v.height = max(h, 0)
	l := v.listener
	v.mu.Unlock()

	if changed && l != nil {
		l.HandleResize()
	}
}

// --- tui.Component ---

// Render draws exactly height lines.
func (v *ListView) Render(out *tui.RenderBuffer, w int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.height <= 0 || w <= 0 {
		return
	}
	p := theme.Current().Palette

	showBar := !v.suppressed && Needed(v.height, v.extent) && w > 1
	cw := w
	var bar []string
	if showBar {
		cw = w - 1
		bar = v.bar.Cells(v.scroll, v.height, v.extent, v.height)
	}

	blank := strings.Repeat(" ", cw)
	for y := range v.height {
		line := blank
		if v.extent == 0 && y == 0 {
			line = width.PadToWidth(p.Muted.Apply(v.placeholder), cw)
		} else if r, k := v.rowAtLocked(v.scroll + y); r != nil {
			var text string
			if k < len(r.lines) {
				text = r.lines[k]
			}
			if r.index == v.selected {
				line = width.Layer(p.Selection.Code(), width.PadToWidth(text, cw))
			} else {
				line = width.PadToWidth(text, cw)
			}
		}
		if showBar {
			line += bar[y]
		}
		out.WriteLine(line)
	}
}

// Invalidate is a no-op; ListView keeps no render cache.
func (v *ListView) Invalidate() {}

// rowAtLocked returns the bound row covering virtual line abs and the
// line within it.
func (v *ListView) rowAtLocked(abs int) (*Row, int) {
	for _, r := range v.rows {
		if r.index >= 0 && abs >= r.y && abs < r.y+v.itemHeight {
			return r, abs - r.y
		}
	}
	return nil, 0
}

func (v *ListView) lenLocked() int {
	return v.extent / v.itemHeight
}

func (v *ListView) maxScrollLocked() int {
	return max(0, v.extent-v.height)
}

// --- tui.InputHandler ---

// HandleInput processes one key or mouse token.
func (v *ListView) HandleInput(data string) {
	if m, ok := key.ParseMouse(data); ok {
		v.HandleMouse(m)
		return
	}

	k := key.ParseKey(data)
	switch k.Type {
	case key.KeyUp:
		v.MoveSelection(-1)
	case key.KeyDown:
		v.MoveSelection(1)
	case key.KeyPageUp:
		v.MoveSelection(-v.pageItems(1))
	case key.KeyPageDown:
		v.MoveSelection(v.pageItems(1))
	case key.KeyCtrlU:
		v.MoveSelection(-v.pageItems(2))
	case key.KeyCtrlD:
		v.MoveSelection(v.pageItems(2))
	case key.KeyHome:
		v.Select(0)
	case key.KeyEnd:
		v.Select(v.Len() - 1)
	case key.KeyEnter:
		v.activate()
	case key.KeyRune:
		switch k.Rune {
		case 'k':
			v.MoveSelection(-1)
		case 'j':
			v.MoveSelection(1)
		case 'g':
			v.Select(0)
		case 'G':
			v.Select(v.Len() - 1)
		}
	}
}

// Len returns the item count derived from the last engine update.
func (v *ListView) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lenLocked()
}

// pageItems returns the number of items in 1/div of the viewport.
func (v *ListView) pageItems(div int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return max(1, v.height/v.itemHeight/div)
}

// MoveSelection moves the selection by delta items.
func (v *ListView) MoveSelection(delta int) {
	v.mu.Lock()
	target := v.selected + delta
	v.mu.Unlock()
	v.Select(target)
}

// Select selects index, clamped to the dataset, and scrolls the least
// distance that makes it fully visible.
func (v *ListView) Select(index int) {
	v.mu.Lock()
	n := v.lenLocked()
	if n == 0 {
		v.mu.Unlock()
		return
	}
	v.selected = min(max(index, 0), n-1)

	top := v.selected * v.itemHeight
	target := v.scroll
	if top < target {
		target = top
	} else if top+v.itemHeight > target+v.height {
		target = top + v.itemHeight - v.height
	}
	target = min(max(target, 0), v.maxScrollLocked())
	scroll := target != v.scroll
	l, fn := v.listener, v.onChange
	v.mu.Unlock()

	if scroll && l != nil {
		l.HandleScroll(target)
	}
	if fn != nil {
		fn()
	}
}

// ScrollBy asks the engine to scroll delta lines, clamped to the range.
func (v *ListView) ScrollBy(delta int) {
	v.mu.Lock()
	target := min(max(v.scroll+delta, 0), v.maxScrollLocked())
	unchanged := target == v.scroll
	l := v.listener
	v.mu.Unlock()

	if !unchanged && l != nil {
		l.HandleScroll(target)
	}
}

func (v *ListView) activate() {
	v.mu.Lock()
	fn, idx, n := v.onActivate, v.selected, v.lenLocked()
	v.mu.Unlock()
	if fn != nil && n > 0 {
		fn(idx)
	}
}

// HandleMouse scrolls on the wheel and turns presses inside the view
// into engine pointer events.
func (v *ListView) HandleMouse(m key.Mouse) {
	v.mu.Lock()
	y := m.Y - v.top
	inside := y >= 0 && y < v.height
	step := v.wheelStep
	l := v.listener
	now := v.now
	v.mu.Unlock()

	if m.IsWheel() {
		if m.Button == key.MouseWheelUp {
			step = -step
		}
		v.ScrollBy(step)
		return
	}
	if m.Action != key.MousePress || !inside || l == nil {
		return
	}

	var b vlist.Button
	switch m.Button {
	case key.MouseLeft:
		b = vlist.ButtonPrimary
	case key.MouseRight:
		b = vlist.ButtonSecondary
	case key.MouseMiddle:
		b = vlist.ButtonMiddle
	default:
		return
	}
	l.HandlePointer(vlist.PointerEvent{X: m.X, Y: y, Button: b, Time: now(), Raw: m})
}
