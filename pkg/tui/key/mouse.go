// ABOUTME: SGR (1006) mouse report parsing: ESC [ < b ; x ; y M|m
// ABOUTME: Decodes button, wheel direction, modifiers and 0-based cell coordinates

package key

import (
	"strconv"
	"strings"
)

// MouseButton identifies which button a report refers to.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseNone
	MouseWheelUp
	MouseWheelDown
)

// MouseAction distinguishes presses, releases and drags.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// Mouse is a decoded SGR mouse report. X and Y are 0-based cells.
type Mouse struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// IsWheel reports whether the event is a scroll wheel tick.
func (m Mouse) IsWheel() bool {
	return m.Button == MouseWheelUp || m.Button == MouseWheelDown
}

const sgrMousePrefix = "\x1b[<"

// ParseMouse decodes a complete SGR mouse report.
func ParseMouse(data string) (Mouse, bool) {
	if !strings.HasPrefix(data, sgrMousePrefix) || len(data) < len(sgrMousePrefix)+6 {
		return Mouse{}, false
	}
	final := data[len(data)-1]
	if final != 'M' && final != 'm' {
		return Mouse{}, false
	}
	fields := strings.Split(data[len(sgrMousePrefix):len(data)-1], ";")
	if len(fields) != 3 {
		return Mouse{}, false
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Mouse{}, false
		}
		nums[i] = n
	}

	code := nums[0]
	m := Mouse{
		X:     max(nums[1]-1, 0),
		Y:     max(nums[2]-1, 0),
		Shift: code&4 != 0,
		Alt:   code&8 != 0,
		Ctrl:  code&16 != 0,
	}

	switch {
	case code&64 != 0:
		if code&1 == 0 {
			m.Button = MouseWheelUp
		} else {
			m.Button = MouseWheelDown
		}
		m.Action = MousePress
		return m, true
	case code&32 != 0:
		m.Action = MouseMotion
	case final == 'm':
		m.Action = MouseRelease
	default:
		m.Action = MousePress
	}

	switch code & 3 {
	case 0:
		m.Button = MouseLeft
	case 1:
		m.Button = MouseMiddle
	case 2:
		m.Button = MouseRight
	default:
		m.Button = MouseNone
	}
	return m, true
}
