// ABOUTME: Active theme held in an atomic pointer
// ABOUTME: Components read Current() per render so config reloads restyle the next frame

package theme

import "sync/atomic"

var current atomic.Pointer[Theme]

func init() {
	current.Store(Builtin("default"))
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme. Nil is ignored.
func Set(t *Theme) {
	if t == nil {
		return
	}
	current.Store(t)
}
