// ABOUTME: Row fitting: truncate with ellipsis, pad to width, expand tabs
// ABOUTME: Keeps styled rows exactly one cell-width so diffed frames never smear

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = '…'

// TruncateToWidth cuts s to at most maxWidth columns, replacing the last
// visible column with an ellipsis when anything was dropped.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return string(ellipsis)
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1
	for i := 0; i < len(s) && col < target; {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune(ellipsis)
	return b.String()
}

// PadToWidth appends spaces so s occupies exactly w columns. Wider
// strings are truncated first.
func PadToWidth(s string, w int) string {
	s = TruncateToWidth(s, w)
	if gap := w - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// ExpandTabs replaces tabs with spaces up to the next multiple of tabWidth.
// ANSI sequences are ignored for column counting.
func ExpandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') || tabWidth <= 0 {
		return s
	}
	var b strings.Builder
	col := 0
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\x1b':
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
		case s[i] == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			i++
		default:
			cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
			b.WriteString(cluster)
			col += graphemeWidth(cluster)
			i += len(s[i:]) - len(rest)
		}
	}
	return b.String()
}
