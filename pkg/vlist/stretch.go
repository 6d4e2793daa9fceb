// ABOUTME: Stretch controller: translates the sentinel to the full virtual height
// ABOUTME: Extent is always dataset length times item height

package vlist

type stretcher struct {
	extent int
}

// restretch recomputes the extent and moves the sentinel so the surface's
// scrollable range matches it. The translation never goes above the top.
func (s *stretcher) restretch(set func(x, y int), length, itemHeight, sentinelSize int) {
	s.extent = length * itemHeight
	set(0, max(s.extent-sentinelSize, 0))
}
