// ABOUTME: Screen modes toggled around a session: alternate screen, mouse reporting, cursor
// ABOUTME: Exit sequences are emitted in reverse so nested modes unwind cleanly

package terminal

import "strings"

// Mode is a set of screen modes.
type Mode uint8

const (
	// AltScreen switches to the alternate screen buffer.
	AltScreen Mode = 1 << iota
	// Mouse enables button and wheel reports in SGR encoding.
	Mouse
	// HideCursor hides the text cursor for the session.
	HideCursor
)

// FullScreen is the mode set used by interactive list sessions.
const FullScreen = AltScreen | Mouse | HideCursor

type modeSeq struct {
	mode        Mode
	enter, exit string
}

var modeSeqs = []modeSeq{
	{AltScreen, "\x1b[?1049h", "\x1b[?1049l"},
	{Mouse, "\x1b[?1000h\x1b[?1002h\x1b[?1006h", "\x1b[?1006l\x1b[?1002l\x1b[?1000l"},
	{HideCursor, "\x1b[?25l", "\x1b[?25h"},
}

// EnterSequence returns the escape sequence that enables m.
func EnterSequence(m Mode) string {
	var b strings.Builder
	for _, s := range modeSeqs {
		if m&s.mode != 0 {
			b.WriteString(s.enter)
		}
	}
	return b.String()
}

// ExitSequence returns the escape sequence that disables m.
func ExitSequence(m Mode) string {
	var b strings.Builder
	for i := len(modeSeqs) - 1; i >= 0; i-- {
		if m&modeSeqs[i].mode != 0 {
			b.WriteString(modeSeqs[i].exit)
		}
	}
	return b.String()
}
