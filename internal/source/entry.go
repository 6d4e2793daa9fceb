// ABOUTME: Entry is the item type every data source produces for the list
// ABOUTME: Display renders the entry's text with tree indentation when it has depth

package source

import "strings"

// Entry is one list item: a log line or a file tree node.
type Entry struct {
	ID    int
	Text  string
	Depth int
	IsDir bool
	Path  string
}

// Display returns the entry as it appears in a row.
func (e Entry) Display() string {
	if e.Depth == 0 && !e.IsDir {
		return e.Text
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", e.Depth))
	b.WriteString(e.Text)
	if e.IsDir {
		b.WriteByte('/')
	}
	return b.String()
}

// FilterText is the string fuzzy filtering matches against.
func (e Entry) FilterText() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Text
}

// DisplayMatches maps byte offsets matched in FilterText onto Display.
// Offsets outside the displayed name are dropped.
func (e Entry) DisplayMatches(matched []int) []int {
	if len(matched) == 0 {
		return nil
	}
	ft := e.FilterText()
	base := len(ft) - len(e.Text)
	indent := 2 * e.Depth
	out := make([]int, 0, len(matched))
	for _, i := range matched {
		if i >= base && i < len(ft) {
			out = append(out, indent+i-base)
		}
	}
	return out
}
