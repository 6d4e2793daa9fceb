// ABOUTME: Fuzzy filtering of list items over sahilm/fuzzy
// ABOUTME: Filter ranks any item type by a text projection; Highlight styles matched bytes

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one ranked item. MatchedIndexes are byte offsets into the
// item's text.
type Match[T any] struct {
	Item           T
	Index          int
	MatchedIndexes []int
	Score          int
}

type source[T any] struct {
	items []T
	text  func(T) string
}

func (s source[T]) String(i int) string { return s.text(s.items[i]) }
func (s source[T]) Len() int            { return len(s.items) }

// Filter ranks items against pattern, best first. An empty pattern
// keeps every item in its original order.
func Filter[T any](pattern string, items []T, text func(T) string) []Match[T] {
	if pattern == "" {
		out := make([]Match[T], len(items))
		for i, it := range items {
			out[i] = Match[T]{Item: it, Index: i}
		}
		return out
	}
	results := fuzzy.FindFrom(pattern, source[T]{items: items, text: text})
	out := make([]Match[T], len(results))
	for i, r := range results {
		out[i] = Match[T]{
			Item:           items[r.Index],
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return out
}

// Find ranks plain strings.
func Find(pattern string, items []string) []Match[string] {
	return Filter(pattern, items, func(s string) string { return s })
}

// Highlight passes each run of matched bytes in s through style.
func Highlight(s string, matched []int, style func(string) string) string {
	if len(matched) == 0 || style == nil {
		return s
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(style(run.String()))
			run.Reset()
		}
	}
	for i, r := range s {
		if hit[i] {
			run.WriteRune(r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}
