// ABOUTME: Tests for pointer resolution and interaction event synthesis
// ABOUTME: Covers click, double click timing, context menu, and unbound slots

package vlist

import (
	"testing"
	"time"
)

func collect(l *List[int, *node]) *[]Event {
	var got []Event
	l.Subscribe(func(e Event) { got = append(got, e) })
	return &got
}

func TestHandlePointer_ClickResolvesIndex(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))
	h.list.Scroll(250) // item 10 spans [240, 264), visible rows 0..13
	got := collect(h.list)

	h.list.HandlePointer(PointerEvent{Y: 20, Raw: "press"})

	if len(*got) != 1 {
		t.Fatalf("events = %v, want one click", *got)
	}
	e := (*got)[0]
	if e.Kind != EventClick || e.Index != 11 || e.Raw != "press" {
		t.Errorf("event = %+v, want click on 11 with raw payload", e)
	}
}

func TestHandlePointer_DoubleClick(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10))
	got := collect(h.list)

	t0 := time.Now()
	h.list.HandlePointer(PointerEvent{Y: 5, Time: t0})
	h.list.HandlePointer(PointerEvent{Y: 10, Time: t0.Add(100 * time.Millisecond)})
	h.list.HandlePointer(PointerEvent{Y: 10, Time: t0.Add(150 * time.Millisecond)})

	kinds := make([]EventKind, len(*got))
	for i, e := range *got {
		kinds[i] = e.Kind
	}
	want := []EventKind{EventClick, EventClick, EventDoubleClick, EventClick}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestHandlePointer_SlowSecondPressIsNotDouble(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10))
	got := collect(h.list)

	t0 := time.Now()
	h.list.HandlePointer(PointerEvent{Y: 0, Time: t0})
	h.list.HandlePointer(PointerEvent{Y: 0, Time: t0.Add(time.Second)})

	for _, e := range *got {
		if e.Kind == EventDoubleClick {
			t.Fatal("double click emitted for presses a second apart")
		}
	}
}

func TestHandlePointer_ContextMenuAndUnbound(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(2))
	got := collect(h.list)

	h.list.HandlePointer(PointerEvent{Y: 80, Button: ButtonSecondary})

	if len(*got) != 1 {
		t.Fatalf("events = %v", *got)
	}
	if e := (*got)[0]; e.Kind != EventContextMenu || e.Index != -1 {
		t.Errorf("event = %+v, want context menu on unbound slot", e)
	}
}

func TestHandlePointer_SubscriberMayCallList(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10))
	var removed []int
	h.list.Subscribe(func(e Event) {
		removed = h.list.DeleteData(e.Index)
	})

	h.list.HandlePointer(PointerEvent{Y: 30})

	if len(removed) != 1 || removed[0] != 1 {
		t.Errorf("removed = %v, want [1]", removed)
	}
}

func TestSlotAt(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10))

	s, ok := h.list.SlotAt(49)
	if !ok || s.Index != 2 {
		t.Errorf("SlotAt(49) = %+v, %v; want index 2", s, ok)
	}
	if _, ok := h.list.SlotAt(100); ok {
		t.Error("SlotAt outside the viewport returned a slot")
	}
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	if EventDoubleClick.String() != "doubleClick" || EventContextMenu.String() != "contextMenu" {
		t.Error("unexpected EventKind names")
	}
}
