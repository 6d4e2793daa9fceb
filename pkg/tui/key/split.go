// ABOUTME: Split breaks a raw stdin read into individual key and mouse tokens
// ABOUTME: Fast typing and wheel bursts arrive as one read; each token parses alone

package key

import "unicode/utf8"

// Split returns the tokens in data, each suitable for ParseKey or
// ParseMouse. A truncated trailing escape sequence is returned as-is.
func Split(data string) []string {
	var out []string
	for i := 0; i < len(data); {
		n := tokenLen(data[i:])
		out = append(out, data[i:i+n])
		i += n
	}
	return out
}

func tokenLen(s string) int {
	if s[0] != 0x1b {
		if s[0] < utf8.RuneSelf {
			return 1
		}
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	if len(s) == 1 {
		return 1
	}
	switch s[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then a final byte.
		for i := 2; i < len(s); i++ {
			c := s[i]
			if c >= 0x40 && c <= 0x7e {
				return i + 1
			}
			if c == 0x1b {
				return i
			}
		}
		return len(s)
	case 'O':
		return min(3, len(s))
	case 0x1b:
		// ESC ESC: the first is a lone Escape.
		return 1
	default:
		_, size := utf8.DecodeRuneInString(s[1:])
		return 1 + size
	}
}
