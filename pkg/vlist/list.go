// ABOUTME: List is the virtualized list engine and its mutation coordinator
// ABOUTME: Scroll, resize and data mutations funnel here; each restretches then renders

package vlist

import (
	"sync"

	"github.com/mauromedda/pi-vlist/internal/eventbus"
	"github.com/mauromedda/pi-vlist/internal/log"
)

// List renders a dataset of T through a small pool of N nodes on a Surface.
//
// Every public method runs to completion before the next one starts. The
// handlers in Options are invoked with the engine lock held and must not
// call back into the List; event subscribers may.
type List[T, N any] struct {
	mu      sync.Mutex
	surface Surface[N]
	opts    Options[T, N]

	buf    dataBuffer[T]
	pool   slotPool[N]
	meas   measurer
	str    stretcher
	rec    reclaimer
	clicks clickTracker
	scroll int

	events  *eventbus.Bus[Event]
	cancel  func()
	started bool
}

// New validates opts and returns an idle List. Call Start to attach it to
// the surface's signals and take the first measurement.
func New[T, N any](surface Surface[N], opts Options[T, N]) (*List[T, N], error) {
	if surface == nil {
		return nil, &ConfigurationError{Field: "surface", Err: ErrNilSurface}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	l := &List[T, N]{
		surface: surface,
		opts:    opts,
		meas:    measurer{itemHeight: opts.ItemHeight, overscan: opts.Overscan},
		events:  eventbus.New[Event](),
	}
	if d, ok := surface.(Decorator); ok {
		d.SetSuppressed(opts.Suppressible)
	}
	return l, nil
}

// Start attaches the surface listeners and performs the first
// measurement. Calling Start on a started List is a no-op.
func (l *List[T, N]) Start() {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	cancel := l.surface.Listen(l)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
	count := l.meas.measure(l.surface.Viewport())
	if deficit := count - l.pool.len(); deficit > 0 {
		l.pool.grow(deficit, l.opts.CreateHandler, l.surface.Attach)
	}
	l.restretch()
	l.render()
	log.Debug("vlist: started viewport=%d slots=%d", l.meas.height, l.pool.len())
}

// Stop detaches listeners and slots and drops the dataset.
func (l *List[T, N]) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.started = false
	l.rec.cancel()
	l.pool.truncate(0, l.surface.Detach)
	l.buf.clear()
	l.scroll = 0
	l.str.extent = 0
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// UpdateOptions swaps the handlers, the scrollbar suppression and the
// double click interval. Geometry (ItemHeight, Overscan, FixedSize) is
// fixed for the session; a change is logged and ignored.
func (l *List[T, N]) UpdateOptions(opts Options[T, N]) error {
	if err := opts.validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if opts.ItemHeight != l.opts.ItemHeight || opts.Overscan != l.opts.Overscan || opts.FixedSize != l.opts.FixedSize {
		log.Debug("vlist: geometry options are fixed per session; ignoring item height %d overscan %d fixed %t",
			opts.ItemHeight, opts.Overscan, opts.FixedSize)
	}
	l.opts.Suppressible = opts.Suppressible
	l.opts.DoubleClickInterval = opts.DoubleClickInterval
	l.opts.ReclaimDelay = opts.ReclaimDelay
	l.opts.CreateHandler = opts.CreateHandler
	l.opts.RenderHandler = opts.RenderHandler
	l.opts.ClearHandler = opts.ClearHandler

	if d, ok := l.surface.(Decorator); ok {
		d.SetSuppressed(opts.Suppressible)
		d.Update(l.scroll, l.meas.height, l.str.extent)
	}
	return nil
}

// InsertData inserts items at index, or appends when index is omitted or
// out of range.
func (l *List[T, N]) InsertData(items []T, index ...int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	at := l.buf.len()
	if len(index) > 0 {
		at = index[0]
	}
	l.buf.insert(items, at)
	l.restretch()
	l.render()
}

// DeleteData removes count items (default 1) starting at index and
// returns them. Ranges past the end yield whatever existed.
func (l *List[T, N]) DeleteData(index int, count ...int) []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 1
	if len(count) > 0 {
		n = count[0]
	}
	removed := l.buf.remove(index, n)
	l.restretch()
	l.recycle()
	l.render()
	return removed
}

// UpdateData replaces the whole dataset and rebuilds the slot pool.
func (l *List[T, N]) UpdateData(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.opts.FixedSize || !l.meas.measured {
		l.meas.measure(l.surface.Viewport())
	}
	l.buf.replace(items)
	count := l.meas.count()
	if l.buf.len() <= count {
		l.scroll = 0
	}

	l.rec.cancel()
	l.pool.truncate(0, l.surface.Detach)
	l.pool.grow(count, l.opts.CreateHandler, l.surface.Attach)
	l.restretch()
	l.render()
}

// HandleScroll renders the window for offset. Offsets outside the
// scrollable range are ignored and the previous window is kept.
func (l *List[T, N]) HandleScroll(offset int) {
	l.Scroll(offset)
}

// Scroll is HandleScroll reporting whether the offset was accepted.
func (l *List[T, N]) Scroll(offset int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if offset < 0 || offset+l.meas.height > l.buf.len()*l.opts.ItemHeight {
		log.Debug("vlist: ignoring scroll offset %d (viewport %d, extent %d)",
			offset, l.meas.height, l.buf.len()*l.opts.ItemHeight)
		return false
	}
	l.scroll = offset
	l.render()
	return true
}

// ScrollToIndex scrolls the least distance that makes index fully
// visible. Out-of-range indexes are clamped to the dataset.
func (l *List[T, N]) ScrollToIndex(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.buf.len()
	if n == 0 {
		return
	}
	index = min(max(index, 0), n-1)
	ih := l.opts.ItemHeight
	top := index * ih
	target := l.scroll
	if top < target {
		target = top
	} else if top+ih > target+l.meas.height {
		target = top + ih - l.meas.height
	}
	target = min(max(target, 0), l.maxScroll())
	if target == l.scroll {
		return
	}
	l.scroll = target
	l.render()
}

// HandleResize reacts to a surface resize signal unless FixedSize is set.
func (l *List[T, N]) HandleResize() {
	l.mu.Lock()
	fixed := l.opts.FixedSize
	l.mu.Unlock()
	if fixed {
		return
	}
	l.DoResize()
}

// DoResize remeasures the viewport. Growth adds exactly the slot deficit;
// shrinkage schedules a debounced reclamation.
func (l *List[T, N]) DoResize() {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.meas.measure(l.surface.Viewport())
	switch have := l.pool.len(); {
	case count < have:
		l.scheduleReclaim()
	default:
		// Back to (or past) the pooled size: a pending reclaim is stale.
		l.rec.cancel()
		if count > have {
			l.pool.grow(count-have, l.opts.CreateHandler, l.surface.Attach)
			log.Debug("vlist: grew slot pool by %d to %d", count-have, count)
		}
	}
	l.scroll = min(l.scroll, l.maxScroll())
	l.render()
}

// restretch recomputes the extent and keeps the scroll offset inside the
// new range. Callers hold l.mu.
func (l *List[T, N]) restretch() {
	l.str.restretch(l.surface.SetStretch, l.buf.len(), l.opts.ItemHeight, l.surface.SentinelSize())
	l.scroll = min(l.scroll, l.maxScroll())
}

func (l *List[T, N]) maxScroll() int {
	return max(0, l.str.extent-l.meas.height)
}

// recycle runs after deletions. The pool is sized by the viewport, so it
// only acts when a shrink left surplus slots behind.
func (l *List[T, N]) recycle() {
	if l.pool.len() > l.meas.count() && !l.rec.pending() {
		l.scheduleReclaim()
	}
}

func (l *List[T, N]) scheduleReclaim() {
	delay := l.opts.ReclaimDelay
	switch {
	case delay < 0:
		return
	case delay == 0:
		l.reclaimLocked()
		return
	}
	l.rec.schedule(delay, func(gen uint64) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if !l.rec.current(gen) {
			return
		}
		l.rec.done(gen)
		l.reclaimLocked()
		l.render()
	})
}

func (l *List[T, N]) reclaimLocked() {
	if n := l.pool.truncate(l.meas.count(), l.surface.Detach); n > 0 {
		log.Debug("vlist: reclaimed %d slots, pool now %d", n, l.pool.len())
	}
}

// Len returns the dataset length.
func (l *List[T, N]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.len()
}

// Items returns a copy of the dataset.
func (l *List[T, N]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.snapshot()
}

// At returns the item at index.
func (l *List[T, N]) At(index int) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if index < 0 || index >= l.buf.len() {
		return zero, false
	}
	return l.buf.items[index], true
}

// ScrollOffset returns the current scroll offset.
func (l *List[T, N]) ScrollOffset() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scroll
}

// ViewportHeight returns the last measured viewport height.
func (l *List[T, N]) ViewportHeight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.meas.height
}

// VisibleCount returns the slot count the current viewport requires.
func (l *List[T, N]) VisibleCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.meas.count()
}

// Extent returns the virtual height: dataset length times item height.
func (l *List[T, N]) Extent() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.str.extent
}

// Window returns the index range the slots currently cover.
func (l *List[T, N]) Window() Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return windowAt(l.scroll, l.opts.ItemHeight, l.pool.len())
}

// Slots returns the state of every slot in pool order.
func (l *List[T, N]) Slots() []SlotState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pool.states()
}
