// ABOUTME: Tests for SGR mouse report decoding
// ABOUTME: Presses, releases, wheel ticks, modifiers and malformed input

package key

import "testing"

func TestParseMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		want   Mouse
		wantOK bool
	}{
		{name: "left press", data: "\x1b[<0;10;5M", want: Mouse{X: 9, Y: 4, Button: MouseLeft, Action: MousePress}, wantOK: true},
		{name: "left release", data: "\x1b[<0;10;5m", want: Mouse{X: 9, Y: 4, Button: MouseLeft, Action: MouseRelease}, wantOK: true},
		{name: "right press", data: "\x1b[<2;1;1M", want: Mouse{Button: MouseRight, Action: MousePress}, wantOK: true},
		{name: "middle press", data: "\x1b[<1;3;3M", want: Mouse{X: 2, Y: 2, Button: MouseMiddle, Action: MousePress}, wantOK: true},
		{name: "wheel up", data: "\x1b[<64;4;8M", want: Mouse{X: 3, Y: 7, Button: MouseWheelUp, Action: MousePress}, wantOK: true},
		{name: "wheel down", data: "\x1b[<65;4;8M", want: Mouse{X: 3, Y: 7, Button: MouseWheelDown, Action: MousePress}, wantOK: true},
		{name: "drag", data: "\x1b[<32;2;2M", want: Mouse{X: 1, Y: 1, Button: MouseLeft, Action: MouseMotion}, wantOK: true},
		{name: "ctrl click", data: "\x1b[<16;2;2M", want: Mouse{X: 1, Y: 1, Button: MouseLeft, Action: MousePress, Ctrl: true}, wantOK: true},
		{name: "shift wheel", data: "\x1b[<68;1;1M", want: Mouse{Button: MouseWheelUp, Action: MousePress, Shift: true}, wantOK: true},
		{name: "not mouse", data: "\x1b[A"},
		{name: "missing field", data: "\x1b[<0;10M"},
		{name: "bad number", data: "\x1b[<0;x;5M"},
		{name: "bad final", data: "\x1b[<0;1;5~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseMouse(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("ParseMouse(%q) ok = %v, want %v", tt.data, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMouse(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestMouseIsWheel(t *testing.T) {
	t.Parallel()

	if !(Mouse{Button: MouseWheelDown}).IsWheel() {
		t.Error("wheel down should be a wheel event")
	}
	if (Mouse{Button: MouseLeft}).IsWheel() {
		t.Error("left button should not be a wheel event")
	}
}
