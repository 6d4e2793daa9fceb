// ABOUTME: Panic recovery that stops the terminal session before reporting
// ABOUTME: Leaves the user's shell usable even when rendering code panics

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred by the goroutine that owns the
// session. On panic it stops t, prints the stack trace and exits 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	_ = t.Stop()
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine is the variant for background goroutines such as
// file followers. It stops t and reports but does not exit.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	_ = t.Stop()
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
