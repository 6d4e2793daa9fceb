// ABOUTME: Configuration errors surfaced by New and UpdateOptions
// ABOUTME: Every other misuse is clamped or ignored rather than reported

package vlist

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ConfigurationError.
var (
	ErrInvalidItemHeight = errors.New("item height must be positive")
	ErrInvalidOverscan   = errors.New("overscan must not be negative")
	ErrMissingHandler    = errors.New("handler is required")
	ErrNilSurface        = errors.New("surface is required")
)

// ConfigurationError reports an option that makes the engine unusable.
// It is the only error the engine returns; all downstream arithmetic
// divides by the item height.
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("vlist: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("vlist: invalid %s (%v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
