// ABOUTME: Tests for fuzzy filtering and match highlighting
// ABOUTME: Verifies ranking, empty pattern passthrough, and highlight runs

package fuzzy

import "testing"

type entry struct {
	id   int
	path string
}

func TestFind_BasicMatch(t *testing.T) {
	t.Parallel()

	matches := Find("app", []string{"apple", "application", "banana", "apricot"})
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	for _, m := range matches {
		if m.Item != "apple" && m.Item != "application" {
			t.Errorf("unexpected match %q", m.Item)
		}
	}
}

func TestFind_NoMatch(t *testing.T) {
	t.Parallel()

	if got := Find("zzz", []string{"cat", "dog", "fish"}); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestFilter_EmptyPatternKeepsOrder(t *testing.T) {
	t.Parallel()

	items := []entry{{1, "b"}, {2, "a"}, {3, "c"}}
	got := Filter("", items, func(e entry) string { return e.path })
	if len(got) != 3 {
		t.Fatalf("got %d, want 3", len(got))
	}
	for i, m := range got {
		if m.Index != i || m.Item != items[i] {
			t.Errorf("match %d = %+v, want item %+v", i, m, items[i])
		}
	}
}

func TestFilter_Structs(t *testing.T) {
	t.Parallel()

	items := []entry{{1, "cmd/main.go"}, {2, "pkg/vlist/list.go"}, {3, "README.md"}}
	got := Filter("vlist", items, func(e entry) string { return e.path })
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].Item.id != 2 || got[0].Index != 1 {
		t.Errorf("match = %+v, want id 2 at index 1", got[0])
	}
	if len(got[0].MatchedIndexes) != len("vlist") {
		t.Errorf("MatchedIndexes = %v", got[0].MatchedIndexes)
	}
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	wrap := func(s string) string { return "[" + s + "]" }
	tests := []struct {
		name    string
		s       string
		matched []int
		want    string
	}{
		{name: "none", s: "abc", matched: nil, want: "abc"},
		{name: "run", s: "abcd", matched: []int{1, 2}, want: "a[bc]d"},
		{name: "split", s: "abcd", matched: []int{0, 3}, want: "[a]bc[d]"},
		{name: "multibyte", s: "éx", matched: []int{2}, want: "é[x]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Highlight(tt.s, tt.matched, wrap); got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}
