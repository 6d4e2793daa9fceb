// ABOUTME: VirtualTerminal implements Terminal in memory for tests
// ABOUTME: Captures output, queues input via Feed, and drives resize callbacks via SetSize

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	width   int
	height  int
	started bool
	modes   Mode
	starts  int
	stops   int
	nextID  int
	resize  map[int]func(width, height int)

	input  chan []byte
	closed chan struct{}
	once   sync.Once
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
		resize: make(map[int]func(width, height int)),
		input:  make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

// Start records the session start and writes the mode sequence.
func (v *VirtualTerminal) Start(modes Mode) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.started = true
	v.modes = modes
	v.starts++
	v.buf.WriteString(EnterSequence(modes))
	return nil
}

// Stop records the session end.
func (v *VirtualTerminal) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.started {
		v.buf.WriteString(ExitSequence(v.modes))
	}
	v.started = false
	v.modes = 0
	v.stops++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Read blocks until Feed supplies input or CloseInput is called.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	select {
	case data := <-v.input:
		return copy(p, data), nil
	case <-v.closed:
		return 0, io.EOF
	}
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize registers fn until the returned cancel is called.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.resize[id] = fn
	return func() {
		v.mu.Lock()
		delete(v.resize, id)
		v.mu.Unlock()
	}
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues one read's worth of input.
func (v *VirtualTerminal) Feed(data string) {
	v.input <- []byte(data)
}

// CloseInput makes pending and future reads return io.EOF.
func (v *VirtualTerminal) CloseInput() {
	v.once.Do(func() { close(v.closed) })
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// Started reports whether a session is active.
func (v *VirtualTerminal) Started() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.started
}

// Counts returns how many times Start and Stop were called.
func (v *VirtualTerminal) Counts() (starts, stops int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.starts, v.stops
}

// SetSize updates the dimensions and invokes every resize callback.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fns := make([]func(int, int), 0, len(v.resize))
	for _, fn := range v.resize {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(width, height)
	}
}
