// ABOUTME: Tests for the filter pattern history
// ABOUTME: Covers recall order, dedup, capacity and persistence

package component

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_AddDedupAndBlank(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("first")
	h.Add("  ")
	h.Add("second")
	h.Add("first")

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	if got := h.Prev(); got != "first" {
		t.Errorf("most recent = %q, want first (re-added)", got)
	}
}

func TestHistory_Navigation(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	for _, s := range []string{"a", "b", "c"} {
		h.Add(s)
	}

	steps := []struct {
		name string
		move func() string
		want string
	}{
		{"prev", h.Prev, "c"},
		{"prev", h.Prev, "b"},
		{"prev", h.Prev, "a"},
		{"prev at oldest", h.Prev, "a"},
		{"next", h.Next, "b"},
		{"next", h.Next, "c"},
		{"next past newest", h.Next, ""},
		{"next again", h.Next, ""},
	}
	for i, s := range steps {
		if got := s.move(); got != s.want {
			t.Fatalf("step %d (%s) = %q, want %q", i, s.name, got, s.want)
		}
	}
}

func TestHistory_ResetAndAddClearPosition(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("a")
	h.Add("b")
	h.Prev()
	h.Reset()
	if got := h.Current(); got != "" {
		t.Errorf("Current() after Reset = %q, want empty", got)
	}

	h.Prev()
	h.Add("c")
	if got := h.Current(); got != "" {
		t.Errorf("Current() after Add = %q, want empty", got)
	}
}

func TestHistory_Capacity(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	for i := range maxHistory + 10 {
		h.Add(fmt.Sprintf("p%d", i))
	}
	if h.Len() != maxHistory {
		t.Errorf("Len() = %d, want %d", h.Len(), maxHistory)
	}
}

func TestHistory_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sub", "history")

	h := NewHistory()
	h.Add("cmd1")
	h.Add("cmd2")
	h.Add("cmd3")
	if err := h.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Mode().Perm() != 0o600 {
		t.Errorf("history file stat = %v, %v", info, err)
	}

	h2 := NewHistory()
	if err := h2.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if h2.Len() != 3 {
		t.Errorf("expected 3 entries after load, got %d", h2.Len())
	}
	if got := h2.Prev(); got != "cmd3" {
		t.Errorf("expected 'cmd3' as most recent, got %q", got)
	}
}

func TestHistory_LoadNonexistent(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	if err := h.LoadFromFile("/nonexistent/path/history"); err != nil {
		t.Errorf("expected nil error for nonexistent file, got %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("expected 0 entries, got %d", h.Len())
	}
}
