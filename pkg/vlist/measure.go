// ABOUTME: Viewport measurer: slot count for a viewport height and item height
// ABOUTME: Caches the last measured height so resizes can be classified as grow or shrink

package vlist

// VisibleCount returns ceil(viewportHeight/itemHeight) + overscan.
func VisibleCount(viewportHeight, itemHeight, overscan int) int {
	if itemHeight <= 0 {
		return overscan
	}
	viewportHeight = max(viewportHeight, 0)
	return (viewportHeight+itemHeight-1)/itemHeight + overscan
}

type measurer struct {
	itemHeight int
	overscan   int
	height     int
	measured   bool
}

// measure records a new viewport height and returns the visible count.
func (m *measurer) measure(height int) int {
	m.height = max(height, 0)
	m.measured = true
	return m.count()
}

func (m *measurer) count() int {
	return VisibleCount(m.height, m.itemHeight, m.overscan)
}
