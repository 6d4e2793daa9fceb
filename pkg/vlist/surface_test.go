// ABOUTME: Recording fake surface shared by engine tests
// ABOUTME: Tracks attached nodes, offsets, stretch, scrollbar updates, and listeners

package vlist

import (
	"slices"
	"sync/atomic"
)

type node struct {
	id    int
	data  int
	index int
	y     int
	bound bool
}

type recordingSurface struct {
	viewport   int
	sentinel   int
	attached   []*node
	detached   atomic.Int64 // Detach may run on the reclaim timer goroutine
	stretchY   int
	listener   Listener
	suppressed bool
	decorated  [3]int
}

func newSurface(viewport int) *recordingSurface {
	return &recordingSurface{viewport: viewport, sentinel: 1}
}

func (s *recordingSurface) Viewport() int     { return s.viewport }
func (s *recordingSurface) SentinelSize() int { return s.sentinel }
func (s *recordingSurface) Attach(n *node)    { s.attached = append(s.attached, n) }

func (s *recordingSurface) Detach(n *node) {
	s.attached = slices.DeleteFunc(s.attached, func(a *node) bool { return a == n })
	s.detached.Add(1)
}

func (s *recordingSurface) SetOffset(n *node, _, y int) { n.y = y }
func (s *recordingSurface) SetStretch(_, y int)         { s.stretchY = y }

func (s *recordingSurface) Listen(l Listener) func() {
	s.listener = l
	return func() { s.listener = nil }
}

func (s *recordingSurface) SetSuppressed(v bool) { s.suppressed = v }

func (s *recordingSurface) Update(offset, viewport, extent int) {
	s.decorated = [3]int{offset, viewport, extent}
}

// resize changes the viewport and fires the resize signal.
func (s *recordingSurface) resize(h int) {
	s.viewport = h
	if s.listener != nil {
		s.listener.HandleResize()
	}
}

type harness struct {
	surface *recordingSurface
	list    *List[int, *node]
	renders int
	nextID  int
}

func newHarness(viewport, itemHeight, overscan int) *harness {
	h := &harness{surface: newSurface(viewport)}
	opts := DefaultOptions(
		func() *node {
			h.nextID++
			return &node{id: h.nextID, index: -1}
		},
		func(n *node, data, index int) {
			h.renders++
			n.data = data
			n.index = index
			n.bound = true
		},
	)
	opts.ItemHeight = itemHeight
	opts.Overscan = overscan
	opts.ReclaimDelay = 0
	opts.ClearHandler = func(n *node) { n.bound = false }
	l, err := New[int, *node](h.surface, opts)
	if err != nil {
		panic(err)
	}
	h.list = l
	return h
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// boundIndexes returns the logical indexes of bound slots in pool order.
func boundIndexes(l *List[int, *node]) []int {
	var out []int
	for _, s := range l.Slots() {
		if s.Bound {
			out = append(out, s.Index)
		}
	}
	return out
}
