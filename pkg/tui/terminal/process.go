// ABOUTME: ProcessTerminal implements Terminal over a tty pair using golang.org/x/term
// ABOUTME: Tracks raw state and active modes so Stop always restores what Start changed

package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal, normally os.Stdin and os.Stdout.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	oldState *term.State
	modes    Mode
}

// NewProcessTerminal returns a ProcessTerminal on stdin and stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{in: os.Stdin, out: os.Stdout}
}

// IsTerminal reports whether both ends are attached to a tty.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// Start switches stdin to raw mode and enables modes on stdout.
func (t *ProcessTerminal) Start(modes Mode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	t.modes = modes
	if _, err := io.WriteString(t.out, EnterSequence(modes)); err != nil {
		return fmt.Errorf("enabling screen modes: %w", err)
	}
	return nil
}

// Stop disables the active modes and restores the saved tty state.
func (t *ProcessTerminal) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	_, _ = io.WriteString(t.out, ExitSequence(t.modes))
	t.modes = 0
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads raw input bytes.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to the output tty.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize calls fn with the new size whenever the terminal is resized.
// The returned cancel stops delivery.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) func() {
	return t.watchResize(fn)
}
