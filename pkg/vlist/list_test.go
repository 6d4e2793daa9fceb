// ABOUTME: Tests for the List engine: windowing, mutations, scroll guard, resize
// ABOUTME: Uses a recording surface; scenarios mirror the documented behaviour

package vlist

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestNew_RejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	create := func() *node { return &node{} }
	render := func(*node, int, int) {}

	tests := []struct {
		name    string
		mutate  func(*Options[int, *node])
		wantErr error
	}{
		{name: "zero item height", mutate: func(o *Options[int, *node]) { o.ItemHeight = 0 }, wantErr: ErrInvalidItemHeight},
		{name: "negative item height", mutate: func(o *Options[int, *node]) { o.ItemHeight = -3 }, wantErr: ErrInvalidItemHeight},
		{name: "negative overscan", mutate: func(o *Options[int, *node]) { o.Overscan = -1 }, wantErr: ErrInvalidOverscan},
		{name: "missing create", mutate: func(o *Options[int, *node]) { o.CreateHandler = nil }, wantErr: ErrMissingHandler},
		{name: "missing render", mutate: func(o *Options[int, *node]) { o.RenderHandler = nil }, wantErr: ErrMissingHandler},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := DefaultOptions(create, render)
			tt.mutate(&opts)
			_, err := New[int, *node](newSurface(100), opts)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigurationError", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want wrapping %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_NilSurface(t *testing.T) {
	t.Parallel()

	_, err := New[int, *node](nil, DefaultOptions(func() *node { return &node{} }, func(*node, int, int) {}))
	if !errors.Is(err, ErrNilSurface) {
		t.Errorf("err = %v, want ErrNilSurface", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := DefaultOptions(func() *node { return nil }, func(*node, int, int) {})
	if o.ItemHeight != 24 || o.Overscan != 0 || o.FixedSize {
		t.Errorf("defaults = %+v", o)
	}
}

func TestVisibleCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		viewport, item, overscan, want int
	}{
		{viewport: 100, item: 24, overscan: 0, want: 5},
		{viewport: 96, item: 24, overscan: 0, want: 4},
		{viewport: 96, item: 24, overscan: 2, want: 6},
		{viewport: 0, item: 24, overscan: 1, want: 1},
		{viewport: 1, item: 1, overscan: 0, want: 1},
	}
	for _, tt := range tests {
		if got := VisibleCount(tt.viewport, tt.item, tt.overscan); got != tt.want {
			t.Errorf("VisibleCount(%d, %d, %d) = %d, want %d", tt.viewport, tt.item, tt.overscan, got, tt.want)
		}
	}
}

func TestStart_SizesPoolFromViewport(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 2)
	h.list.Start()

	if got := len(h.list.Slots()); got != 7 {
		t.Errorf("pool = %d, want 7", got)
	}
	if len(h.surface.attached) != 7 {
		t.Errorf("attached = %d, want 7", len(h.surface.attached))
	}
	if h.surface.listener == nil {
		t.Error("Start did not register a listener")
	}
	if h.renders != 0 {
		t.Errorf("renders = %d on empty data, want 0", h.renders)
	}
}

func TestScrollScenario(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))

	h.surface.listener.HandleScroll(240)

	if got, want := boundIndexes(h.list), []int{10, 11, 12, 13, 14}; !slices.Equal(got, want) {
		t.Fatalf("bound = %v, want %v", got, want)
	}
	before := h.list.Slots()

	h.surface.listener.HandleScroll(-5)

	if !slices.Equal(h.list.Slots(), before) {
		t.Error("negative scroll changed the slot bindings")
	}
	if h.list.ScrollOffset() != 240 {
		t.Errorf("ScrollOffset = %d, want 240", h.list.ScrollOffset())
	}
}

func TestScroll_PositionsSlots(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))

	if !h.list.Scroll(250) {
		t.Fatal("Scroll(250) rejected")
	}
	// startIndex 10, intra-item offset 10: slots start at 240.
	for i, s := range h.list.Slots() {
		if want := 240 + i*24; s.Y != want {
			t.Errorf("slot %d Y = %d, want %d", i, s.Y, want)
		}
		if s.Index != 10+i {
			t.Errorf("slot %d Index = %d, want %d", i, s.Index, 10+i)
		}
	}
	for _, n := range h.surface.attached {
		if n.data != n.index {
			t.Errorf("node bound to data %d at index %d", n.data, n.index)
		}
	}
}

func TestScroll_BoundRangeProperty(t *testing.T) {
	t.Parallel()

	const n, ih, vh = 37, 3, 20
	h := newHarness(vh, ih, 1)
	h.list.Start()
	h.list.UpdateData(seq(n))
	pool := len(h.list.Slots())

	for off := 0; off <= n*ih-vh; off++ {
		if !h.list.Scroll(off) {
			t.Fatalf("Scroll(%d) rejected", off)
		}
		start := off / ih
		var want []int
		for i := start; i < min(start+pool, n); i++ {
			want = append(want, i)
		}
		if got := boundIndexes(h.list); !slices.Equal(got, want) {
			t.Fatalf("offset %d: bound = %v, want %v", off, got, want)
		}
	}
}

func TestScroll_RejectsOvershoot(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10)) // extent 240, max offset 140

	if !h.list.Scroll(140) {
		t.Error("Scroll(140) rejected at the exact maximum")
	}
	if h.list.Scroll(141) {
		t.Error("Scroll(141) accepted past the maximum")
	}
	if h.list.ScrollOffset() != 140 {
		t.Errorf("ScrollOffset = %d, want 140", h.list.ScrollOffset())
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 1)
	h.list.Start()
	h.list.UpdateData(seq(50))
	h.list.Scroll(333)
	first := h.list.Slots()

	h.list.Scroll(333)

	if !slices.Equal(first, h.list.Slots()) {
		t.Errorf("second render changed slots: %v vs %v", first, h.list.Slots())
	}
}

func TestUpdateData_EmptyDataset(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData([]int{})

	if h.list.Extent() != 0 {
		t.Errorf("Extent = %d, want 0", h.list.Extent())
	}
	if got := boundIndexes(h.list); len(got) != 0 {
		t.Errorf("bound = %v, want none", got)
	}
	if h.renders != 0 {
		t.Errorf("renders = %d, want 0", h.renders)
	}
}

func TestUpdateData_RecreatesPoolAndResetsScroll(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))
	h.list.Scroll(480)
	oldIDs := h.list.Slots()

	h.list.UpdateData(seq(3))

	if h.list.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset = %d, want 0", h.list.ScrollOffset())
	}
	slots := h.list.Slots()
	if len(slots) != 5 {
		t.Fatalf("pool = %d, want 5", len(slots))
	}
	for _, s := range slots {
		for _, old := range oldIDs {
			if s.ID == old.ID {
				t.Fatalf("slot %d survived UpdateData", s.ID)
			}
		}
	}
	if got, want := boundIndexes(h.list), []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("bound = %v, want %v", got, want)
	}
	if len(h.surface.attached) != 5 {
		t.Errorf("attached = %d, want 5", len(h.surface.attached))
	}
}

func TestUpdateData_DoesNotAliasCallerSlice(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	data := seq(5)
	h.list.UpdateData(data)
	data[0] = 99

	if v, _ := h.list.At(0); v != 0 {
		t.Errorf("At(0) = %d after caller mutation, want 0", v)
	}
}

func TestInsertDelete_RoundTrip(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(20))
	before := h.list.Items()

	h.list.InsertData([]int{-1}, 0)
	if h.list.Len() != 21 {
		t.Fatalf("Len = %d after insert, want 21", h.list.Len())
	}
	removed := h.list.DeleteData(0, 1)

	if !slices.Equal(removed, []int{-1}) {
		t.Errorf("removed = %v, want [-1]", removed)
	}
	if !slices.Equal(h.list.Items(), before) {
		t.Errorf("items = %v, want %v", h.list.Items(), before)
	}
}

func TestInsertData_ClampsToAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index []int
	}{
		{name: "default", index: nil},
		{name: "past end", index: []int{42}},
		{name: "negative", index: []int{-7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(100, 24, 0)
			h.list.Start()
			h.list.UpdateData(seq(3))
			h.list.InsertData([]int{7, 8}, tt.index...)
			if got, want := h.list.Items(), []int{0, 1, 2, 7, 8}; !slices.Equal(got, want) {
				t.Errorf("items = %v, want %v", got, want)
			}
		})
	}
}

func TestInsertData_RendersNewItemsInWindow(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.InsertData([]int{10, 20})

	if got, want := boundIndexes(h.list), []int{0, 1}; !slices.Equal(got, want) {
		t.Errorf("bound = %v, want %v", got, want)
	}
	if h.list.Extent() != 48 {
		t.Errorf("Extent = %d, want 48", h.list.Extent())
	}
}

func TestDeleteData_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		index      int
		count      []int
		wantLen    int
		wantRemain int
	}{
		{name: "tail overshoot", index: 3, count: []int{100}, wantLen: 7, wantRemain: 3},
		{name: "default count", index: 0, wantLen: 1, wantRemain: 9},
		{name: "index past end", index: 10, count: []int{2}, wantLen: 0, wantRemain: 10},
		{name: "negative index", index: -1, wantLen: 0, wantRemain: 10},
		{name: "zero count", index: 2, count: []int{0}, wantLen: 0, wantRemain: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(100, 24, 0)
			h.list.Start()
			h.list.UpdateData(seq(10))
			removed := h.list.DeleteData(tt.index, tt.count...)
			if len(removed) != tt.wantLen {
				t.Errorf("removed %d items, want %d", len(removed), tt.wantLen)
			}
			if h.list.Len() != tt.wantRemain {
				t.Errorf("Len = %d, want %d", h.list.Len(), tt.wantRemain)
			}
		})
	}
}

func TestDeleteData_ClearsSlotsPastEnd(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(5))

	h.list.DeleteData(3, 2)

	bound := 0
	for _, n := range h.surface.attached {
		if n.bound {
			bound++
		}
	}
	if bound != 3 {
		t.Errorf("bound nodes = %d, want 3", bound)
	}
}

func TestDeleteData_ClampsScroll(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))
	h.list.Scroll(2300)

	h.list.DeleteData(50, 50) // extent 1200, max offset 1100

	if h.list.ScrollOffset() != 1100 {
		t.Errorf("ScrollOffset = %d, want 1100", h.list.ScrollOffset())
	}
}

func TestStretchInvariant(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()

	check := func(step string) {
		t.Helper()
		if got, want := h.list.Extent(), h.list.Len()*24; got != want {
			t.Errorf("%s: Extent = %d, want %d", step, got, want)
		}
		if want := max(h.list.Len()*24-h.surface.sentinel, 0); h.surface.stretchY != want {
			t.Errorf("%s: sentinel at %d, want %d", step, h.surface.stretchY, want)
		}
		if h.surface.decorated[2] != h.list.Extent() {
			t.Errorf("%s: decorator extent = %d, want %d", step, h.surface.decorated[2], h.list.Extent())
		}
	}

	h.list.UpdateData(seq(10))
	check("update")
	h.list.InsertData(seq(5), 2)
	check("insert")
	h.list.DeleteData(0, 7)
	check("delete")
	h.list.UpdateData(nil)
	check("empty")
}

func TestResize_GrowAddsDeficit(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 1)
	h.list.Start()
	h.list.UpdateData(seq(3))
	ids := h.list.Slots()

	h.surface.resize(200)

	slots := h.list.Slots()
	if want := VisibleCount(200, 24, 1); len(slots) != want {
		t.Fatalf("pool = %d, want %d", len(slots), want)
	}
	for i, s := range ids {
		if slots[i].ID != s.ID {
			t.Errorf("slot %d identity changed on grow", i)
		}
	}
}

func TestResize_ShrinkReclaims(t *testing.T) {
	t.Parallel()

	h := newHarness(200, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))

	h.surface.resize(50)

	if got, want := len(h.list.Slots()), VisibleCount(50, 24, 0); got != want {
		t.Errorf("pool = %d, want %d", got, want)
	}
	if h.surface.detached.Load() == 0 {
		t.Error("no slots detached on shrink")
	}
}

func TestResize_CardinalityIndependentOfData(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 4, 1000} {
		h := newHarness(100, 24, 2)
		h.list.Start()
		h.list.UpdateData(seq(n))
		h.surface.resize(150)
		if got, want := len(h.list.Slots()), VisibleCount(150, 24, 2); got != want {
			t.Errorf("n=%d: pool = %d, want %d", n, got, want)
		}
	}
}

func TestResize_DebouncedReclaim(t *testing.T) {
	t.Parallel()

	h := newHarness(200, 10, 0)
	h.list.opts.ReclaimDelay = 20 * time.Millisecond
	h.list.Start()
	h.list.UpdateData(seq(100))

	h.surface.resize(100)
	if got := len(h.list.Slots()); got != 20 {
		t.Fatalf("pool = %d right after shrink, want 20 (deferred)", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(h.list.Slots()) != 10 {
		if time.Now().After(deadline) {
			t.Fatalf("pool = %d, reclamation never ran", len(h.list.Slots()))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestResize_GrowCancelsPendingReclaim(t *testing.T) {
	t.Parallel()

	h := newHarness(200, 10, 0)
	h.list.opts.ReclaimDelay = 30 * time.Millisecond
	h.list.Start()
	h.list.UpdateData(seq(100))
	// UpdateData rebuilds the pool; only detaches after this point count.
	h.surface.detached.Store(0)

	h.surface.resize(100)
	if got := len(h.list.Slots()); got != 20 {
		t.Fatalf("pool = %d right after shrink, want 20 (deferred)", got)
	}
	h.surface.resize(200)
	if h.list.rec.pending() {
		t.Error("reclaim still pending after the viewport grew back")
	}
	time.Sleep(80 * time.Millisecond)

	if got := len(h.list.Slots()); got != 20 {
		t.Errorf("pool = %d, want 20", got)
	}
	if got := h.surface.detached.Load(); got != 0 {
		t.Errorf("detached = %d after shrink then grow, want 0", got)
	}
}

func TestResize_FixedSizeIgnoresSignal(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.opts.FixedSize = true
	h.list.Start()

	h.surface.resize(300)
	if got := len(h.list.Slots()); got != 5 {
		t.Errorf("pool = %d after resize signal, want 5", got)
	}

	h.list.DoResize()
	if got := len(h.list.Slots()); got != VisibleCount(300, 24, 0) {
		t.Errorf("pool = %d after DoResize, want %d", got, VisibleCount(300, 24, 0))
	}
}

func TestRenderItem(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))
	h.list.Scroll(240)

	if !h.list.RenderItem(555, 12) {
		t.Fatal("RenderItem(12) did not rebind a visible slot")
	}
	var found bool
	for _, n := range h.surface.attached {
		if n.index == 12 {
			found = n.data == 555
		}
	}
	if !found {
		t.Error("slot for index 12 not rebound with new data")
	}
	if v, _ := h.list.At(12); v != 12 {
		t.Errorf("dataset changed by RenderItem: At(12) = %d", v)
	}
	if h.list.RenderItem(1, 50) {
		t.Error("RenderItem rebound an index outside the window")
	}
}

func TestScrollToIndex(t *testing.T) {
	t.Parallel()

	h := newHarness(10, 1, 0)
	h.list.Start()
	h.list.UpdateData(seq(100))

	h.list.ScrollToIndex(25)
	if h.list.ScrollOffset() != 16 {
		t.Errorf("ScrollOffset = %d, want 16", h.list.ScrollOffset())
	}
	h.list.ScrollToIndex(3)
	if h.list.ScrollOffset() != 3 {
		t.Errorf("ScrollOffset = %d, want 3", h.list.ScrollOffset())
	}
	h.list.ScrollToIndex(1000)
	if h.list.ScrollOffset() != 90 {
		t.Errorf("ScrollOffset = %d, want 90", h.list.ScrollOffset())
	}
}

func TestStop_DetachesAndClears(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10))

	h.list.Stop()

	if len(h.surface.attached) != 0 {
		t.Errorf("attached = %d after Stop, want 0", len(h.surface.attached))
	}
	if h.list.Len() != 0 {
		t.Errorf("Len = %d after Stop, want 0", h.list.Len())
	}
	if h.surface.listener != nil {
		t.Error("listener still registered after Stop")
	}
}

func TestUpdateOptions(t *testing.T) {
	t.Parallel()

	h := newHarness(100, 24, 0)
	h.list.Start()
	h.list.UpdateData(seq(10))

	opts := h.list.opts
	opts.Suppressible = true
	opts.ItemHeight = 48
	if err := h.list.UpdateOptions(opts); err != nil {
		t.Fatalf("UpdateOptions: %v", err)
	}
	if !h.surface.suppressed {
		t.Error("Suppressible not propagated to the decorator")
	}
	if h.list.Extent() != 240 {
		t.Errorf("Extent = %d, want 240 (item height is fixed per session)", h.list.Extent())
	}

	opts.ItemHeight = 0
	if err := h.list.UpdateOptions(opts); !errors.Is(err, ErrInvalidItemHeight) {
		t.Errorf("err = %v, want ErrInvalidItemHeight", err)
	}
}
