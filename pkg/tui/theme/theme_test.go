// ABOUTME: Tests for Color styling and the built-in palettes
// ABOUTME: Every built-in must define every role so rows never render unstyled by accident

package theme

import (
	"reflect"
	"sync"
	"testing"
)

func TestColor_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		text  string
		want  string
	}{
		{name: "empty color", color: NewColor(""), text: "row", want: "row"},
		{name: "red", color: NewColor("\x1b[31m"), text: "row", want: "\x1b[31mrow\x1b[0m"},
		{name: "bold red", color: NewColor("\x1b[31m").Bold(), text: "x", want: "\x1b[1m\x1b[31mx\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.color.Apply(tt.text); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuiltins_AllRolesSet(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinNames() {
		th := Builtin(name)
		if th == nil {
			t.Fatalf("Builtin(%q) = nil", name)
		}
		if th.Name != name {
			t.Errorf("Builtin(%q).Name = %q", name, th.Name)
		}
		v := reflect.ValueOf(th.Palette)
		for i := range v.NumField() {
			if v.Field(i).Interface().(Color).Code() == "" {
				t.Errorf("theme %q: role %s is empty", name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	t.Parallel()
	if Builtin("solarized") != nil {
		t.Error("expected nil for unknown builtin")
	}
}

func TestCurrent_DefaultAndSet(t *testing.T) {
	// Not parallel: mutates the package-level theme.
	if Current() == nil {
		t.Fatal("Current() returned nil")
	}
	old := Current()
	defer Set(old)

	Set(Builtin("dark"))
	if got := Current().Name; got != "dark" {
		t.Errorf("Current().Name = %q, want dark", got)
	}
	Set(nil)
	if got := Current().Name; got != "dark" {
		t.Errorf("Set(nil) replaced theme with %q", got)
	}

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() { _ = Current() })
	}
	wg.Wait()
}
