// ABOUTME: Row is the render node a ListView hands to the list engine
// ABOUTME: Holds the pre-styled lines of one item and its placement on the virtual axis

package component

import "sync"

// Row is one recyclable slot of a ListView. A render handler fills it
// with SetLines; the engine positions it through the view.
type Row struct {
	id    int
	y     int
	index int
	lines []string
	mu    *sync.Mutex // the owning view's lock; nil for detached rows
}

func (r *Row) lock() {
	if r.mu != nil {
		r.mu.Lock()
	}
}

func (r *Row) unlock() {
	if r.mu != nil {
		r.mu.Unlock()
	}
}

// ID returns the creation order of the row within its view.
func (r *Row) ID() int { return r.id }

// Index returns the logical item index the row shows, or -1.
func (r *Row) Index() int {
	r.lock()
	defer r.unlock()
	return r.index
}

// Y returns the row's offset on the virtual axis.
func (r *Row) Y() int {
	r.lock()
	defer r.unlock()
	return r.y
}

// Lines returns the bound content.
func (r *Row) Lines() []string {
	r.lock()
	defer r.unlock()
	return append([]string(nil), r.lines...)
}

// SetLines binds content for item index. Lines beyond the view's item
// height are not drawn; missing lines render blank.
func (r *Row) SetLines(index int, lines ...string) {
	r.lock()
	defer r.unlock()
	r.index = index
	r.lines = append(r.lines[:0], lines...)
}

// Clear unbinds the row.
func (r *Row) Clear() {
	r.lock()
	defer r.unlock()
	r.index = -1
	r.lines = r.lines[:0]
}
