// ABOUTME: Slot pool: fixed-cardinality set of reusable render nodes
// ABOUTME: Sized by the viewport only; slot identity is stable until reclaimed

package vlist

const unbound = -1

type slot[N any] struct {
	id    int
	node  N
	y     int
	index int
}

// SlotState is a read-only view of one slot.
type SlotState struct {
	ID    int
	Y     int
	Index int
	Bound bool
}

type slotPool[N any] struct {
	slots  []*slot[N]
	nextID int
}

func (p *slotPool[N]) len() int {
	return len(p.slots)
}

// grow appends n new slots and attaches them. It does not render.
func (p *slotPool[N]) grow(n int, create func() N, attach func(N)) {
	for range n {
		s := &slot[N]{id: p.nextID, node: create(), index: unbound}
		p.nextID++
		attach(s.node)
		p.slots = append(p.slots, s)
	}
}

// truncate detaches slots beyond keep and returns how many were removed.
func (p *slotPool[N]) truncate(keep int, detach func(N)) int {
	keep = max(keep, 0)
	if keep >= len(p.slots) {
		return 0
	}
	removed := len(p.slots) - keep
	for _, s := range p.slots[keep:] {
		detach(s.node)
	}
	clear(p.slots[keep:])
	p.slots = p.slots[:keep]
	return removed
}

func (p *slotPool[N]) states() []SlotState {
	out := make([]SlotState, len(p.slots))
	for i, s := range p.slots {
		out[i] = SlotState{ID: s.id, Y: s.y, Index: s.index, Bound: s.index != unbound}
	}
	return out
}
