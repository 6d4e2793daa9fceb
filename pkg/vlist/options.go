// ABOUTME: Engine options: item geometry, overscan, slot factory and binder
// ABOUTME: DefaultOptions fills the documented defaults; validate rejects bad geometry

package vlist

import "time"

// Documented defaults.
const (
	DefaultItemHeight          = 24
	DefaultReclaimDelay        = 250 * time.Millisecond
	DefaultDoubleClickInterval = 400 * time.Millisecond
)

// Options configures a List. ItemHeight, Overscan and FixedSize are fixed
// for the lifetime of the session; see List.UpdateOptions.
type Options[T, N any] struct {
	// ItemHeight is the uniform height of one item in surface units.
	ItemHeight int
	// Overscan is the number of extra slots kept beyond the visible edge.
	Overscan int
	// FixedSize suppresses resize signal handling.
	FixedSize bool
	// Suppressible hides the scrollbar decoration when true.
	Suppressible bool

	// ReclaimDelay debounces physical slot reclamation after a shrink.
	// Zero reclaims immediately; a negative value never reclaims.
	ReclaimDelay time.Duration
	// DoubleClickInterval is the maximum gap between two primary presses
	// on the same item for them to count as a double click.
	DoubleClickInterval time.Duration

	// CreateHandler builds a new render node for a slot.
	CreateHandler func() N
	// RenderHandler binds data to a node.
	RenderHandler func(node N, data T, index int)
	// ClearHandler, if set, is called when a bound slot falls past the
	// end of the data and becomes unbound.
	ClearHandler func(node N)
}

// DefaultOptions returns options with the documented defaults and the
// given handlers.
func DefaultOptions[T, N any](create func() N, render func(N, T, int)) Options[T, N] {
	return Options[T, N]{
		ItemHeight:          DefaultItemHeight,
		ReclaimDelay:        DefaultReclaimDelay,
		DoubleClickInterval: DefaultDoubleClickInterval,
		CreateHandler:       create,
		RenderHandler:       render,
	}
}

func (o Options[T, N]) validate() error {
	if o.ItemHeight <= 0 {
		return &ConfigurationError{Field: "item height", Value: o.ItemHeight, Err: ErrInvalidItemHeight}
	}
	if o.Overscan < 0 {
		return &ConfigurationError{Field: "overscan", Value: o.Overscan, Err: ErrInvalidOverscan}
	}
	if o.CreateHandler == nil {
		return &ConfigurationError{Field: "create handler", Err: ErrMissingHandler}
	}
	if o.RenderHandler == nil {
		return &ConfigurationError{Field: "render handler", Err: ErrMissingHandler}
	}
	return nil
}
