// ABOUTME: Terminal interface: session start/stop, size, output, input, resize events
// ABOUTME: Implemented by ProcessTerminal (real tty) and VirtualTerminal (tests)

package terminal

// Terminal abstracts the tty a full-screen list runs on. Start puts the
// terminal into raw mode and enables the requested Modes; Stop undoes
// both and is safe to call more than once.
type Terminal interface {
	Start(modes Mode) error
	Stop() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int)) (cancel func())
}
