// ABOUTME: Tests for the background preset parsing
// ABOUTME: Only "light" (any case) selects a light background

package termfix

import "testing"

func TestIsDark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "", want: true},
		{in: "dark", want: true},
		{in: "light", want: false},
		{in: " Light ", want: false},
		{in: "solarized", want: true},
	}
	for _, tt := range tests {
		if got := IsDark(tt.in); got != tt.want {
			t.Errorf("IsDark(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
