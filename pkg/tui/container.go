// ABOUTME: Container stacks child Components in a column and lays them out
// ABOUTME: Fixed children keep their natural height; Sized children share the rest

package tui

import (
	"slices"
	"sync"
)

// Container holds an ordered column of child components.
type Container struct {
	mu       sync.RWMutex
	children []Component
}

// NewContainer creates a Container with the given children.
func NewContainer(children ...Component) *Container {
	return &Container{children: children}
}

// Add appends a component to the bottom of the column.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	c.children = append(c.children, comp)
	c.mu.Unlock()
}

// Children returns a snapshot of the current children.
func (c *Container) Children() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.children)
}

// SetSize lays the column out in width x height cells. Children that are
// not Sized keep the height they render at; Sized children split the
// remaining rows evenly and the first one takes the remainder.
func (c *Container) SetSize(width, height int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fixed := 0
	var flex []Sized
	for _, child := range c.children {
		if s, ok := child.(Sized); ok {
			flex = append(flex, s)
			continue
		}
		fixed += measure(child, width)
	}
	if len(flex) == 0 {
		return
	}
	rest := max(height-fixed, 0)
	share, extra := rest/len(flex), rest%len(flex)
	for i, s := range flex {
		h := share
		if i == 0 {
			h += extra
		}
		s.SetSize(width, h)
	}
}

// Top returns the screen row at which comp starts when rendered at width,
// or -1 when comp is not a child.
func (c *Container) Top(comp Component, width int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	row := 0
	for _, child := range c.children {
		if child == comp {
			return row
		}
		row += measure(child, width)
	}
	return -1
}

// Render renders all children top to bottom into the buffer.
func (c *Container) Render(out *RenderBuffer, width int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Render(out, width)
	}
}

// Invalidate invalidates all children.
func (c *Container) Invalidate() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Invalidate()
	}
}

func measure(comp Component, width int) int {
	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	comp.Render(buf, width)
	return buf.Len()
}
