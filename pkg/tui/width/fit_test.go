// ABOUTME: Tests for truncation, padding, and tab expansion
// ABOUTME: Asserts visible widths rather than exact escape layout

package width

import "testing"

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits", input: "hi", maxWidth: 5, want: "hi"},
		{name: "exact", input: "hello", maxWidth: 5, want: "hello"},
		{name: "one column", input: "hello", maxWidth: 1, want: "…"},
		{name: "zero", input: "hello", maxWidth: 0, want: ""},
		{name: "truncated", input: "hello world", maxWidth: 5, want: "hell\x1b[0m…"},
		{name: "wide boundary", input: "日本語", maxWidth: 4, want: "日\x1b[0m…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateToWidth(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPadToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		w     int
	}{
		{input: "", w: 4},
		{input: "ab", w: 4},
		{input: "\x1b[1mab\x1b[0m", w: 6},
		{input: "too long for it", w: 5},
		{input: "日本", w: 5},
	}
	for _, tt := range tests {
		if got := VisibleWidth(PadToWidth(tt.input, tt.w)); got != tt.w {
			t.Errorf("PadToWidth(%q, %d) width = %d", tt.input, tt.w, got)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "a\tb", want: "a   b"},
		{input: "\tx", want: "    x"},
		{input: "abcd\te", want: "abcd    e"},
		{input: "\x1b[1ma\x1b[0m\tb", want: "\x1b[1ma\x1b[0m   b"},
		{input: "no tabs", want: "no tabs"},
	}
	for _, tt := range tests {
		if got := ExpandTabs(tt.input, 4); got != tt.want {
			t.Errorf("ExpandTabs(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
