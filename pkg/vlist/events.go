// ABOUTME: Interaction events (click, double click, context menu) resolved to items
// ABOUTME: Double clicks are synthesized from two primary presses on the same item

package vlist

import "time"

// EventKind enumerates interaction events.
type EventKind int

const (
	EventClick EventKind = iota
	EventDoubleClick
	EventContextMenu
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "doubleClick"
	case EventContextMenu:
		return "contextMenu"
	default:
		return "unknown"
	}
}

// Event is published to subscribers for every pointer interaction.
// Index is the logical index of the slot under the pointer, or -1.
type Event struct {
	Kind  EventKind
	Index int
	Y     int
	Raw   any
}

type clickTracker struct {
	index int
	at    time.Time
	armed bool
}

// press classifies a primary press on index at t.
func (c *clickTracker) press(index int, t time.Time, interval time.Duration) (double bool) {
	if c.armed && index != unbound && index == c.index && interval > 0 && t.Sub(c.at) <= interval {
		c.armed = false
		return true
	}
	c.index = index
	c.at = t
	c.armed = true
	return false
}

// HandlePointer resolves the pointer to a slot and publishes the matching
// events. Subscribers run after the engine lock is released.
func (l *List[T, N]) HandlePointer(ev PointerEvent) {
	l.mu.Lock()
	index := l.indexAtLocked(ev.Y)
	interval := l.opts.DoubleClickInterval
	var out []Event
	switch ev.Button {
	case ButtonSecondary:
		out = append(out, Event{Kind: EventContextMenu, Index: index, Y: ev.Y, Raw: ev.Raw})
	case ButtonPrimary:
		t := ev.Time
		if t.IsZero() {
			t = time.Now()
		}
		out = append(out, Event{Kind: EventClick, Index: index, Y: ev.Y, Raw: ev.Raw})
		if l.clicks.press(index, t, interval) {
			out = append(out, Event{Kind: EventDoubleClick, Index: index, Y: ev.Y, Raw: ev.Raw})
		}
	}
	l.mu.Unlock()

	for _, e := range out {
		l.events.Publish(e)
	}
}

// Subscribe registers fn for interaction events and returns an
// unsubscribe function.
func (l *List[T, N]) Subscribe(fn func(Event)) (unsubscribe func()) {
	return l.events.Subscribe(fn)
}

// SlotAt returns the slot covering viewport row y.
func (l *List[T, N]) SlotAt(y int) (SlotState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.slotAtLocked(y)
	if s == nil {
		return SlotState{}, false
	}
	return SlotState{ID: s.id, Y: s.y, Index: s.index, Bound: s.index != unbound}, true
}

func (l *List[T, N]) slotAtLocked(y int) *slot[N] {
	if y < 0 || y >= l.meas.height {
		return nil
	}
	abs := l.scroll + y
	for _, s := range l.pool.slots {
		if abs >= s.y && abs < s.y+l.opts.ItemHeight {
			return s
		}
	}
	return nil
}

func (l *List[T, N]) indexAtLocked(y int) int {
	if s := l.slotAtLocked(y); s != nil {
		return s.index
	}
	return unbound
}
