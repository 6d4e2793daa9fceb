// ABOUTME: Window renderer: maps the scroll offset to a contiguous index range
// ABOUTME: Rebinds every slot on each pass; slots past the data end stay unbound

package vlist

// Window is the contiguous range of logical indexes mapped to slots.
type Window struct {
	Start int
	End   int // exclusive; may exceed the dataset length
}

func windowAt(scroll, itemHeight, slots int) Window {
	start := scroll / itemHeight
	return Window{Start: start, End: start + slots}
}

// render positions every slot for the current scroll offset and binds the
// ones that fall inside the dataset. Callers hold l.mu.
func (l *List[T, N]) render() {
	ih := l.opts.ItemHeight
	w := windowAt(l.scroll, ih, l.pool.len())
	offset := l.scroll % ih
	n := l.buf.len()

	for i, s := range l.pool.slots {
		s.y = l.scroll + i*ih - offset
		l.surface.SetOffset(s.node, 0, s.y)

		idx := w.Start + i
		if idx >= 0 && idx < n {
			s.index = idx
			l.opts.RenderHandler(s.node, l.buf.items[idx], idx)
			continue
		}
		if s.index != unbound && l.opts.ClearHandler != nil {
			l.opts.ClearHandler(s.node)
		}
		s.index = unbound
	}

	if d, ok := l.surface.(Decorator); ok {
		d.Update(l.scroll, l.meas.height, l.str.extent)
	}
}

// RenderItem rebinds only the slot currently showing index, passing data
// to the render handler. The dataset itself is not modified. It reports
// whether a slot was rebound.
func (l *List[T, N]) RenderItem(data T, index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= l.buf.len() {
		return false
	}
	w := windowAt(l.scroll, l.opts.ItemHeight, l.pool.len())
	if index < w.Start || index >= w.End {
		return false
	}
	s := l.pool.slots[index-w.Start]
	s.index = index
	l.opts.RenderHandler(s.node, data, index)
	return true
}
