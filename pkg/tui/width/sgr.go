// ABOUTME: SGR style state and layering of a base style under styled text
// ABOUTME: Lets a selected row keep its match highlights without losing the selection colour

package width

import (
	"strconv"
	"strings"
)

// sgrState is the set of graphic attributes active at a point in a line.
type sgrState struct {
	attrs  [10]bool // indexed by SGR code 1..9
	fg, bg string   // e.g. "31" or "38;5;208"
}

func (st *sgrState) apply(params string) {
	if params == "" {
		*st = sgrState{}
		return
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			*st = sgrState{}
		case code >= 1 && code <= 9:
			st.attrs[code] = true
		case code == 22:
			st.attrs[1], st.attrs[2] = false, false
		case code >= 23 && code <= 29:
			st.attrs[code-20] = false
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			st.fg = parts[i]
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			st.bg = parts[i]
		case code == 38 || code == 48:
			n := extendedLen(parts[i:])
			v := strings.Join(parts[i:i+n], ";")
			if code == 38 {
				st.fg = v
			} else {
				st.bg = v
			}
			i += n - 1
		case code == 39:
			st.fg = ""
		case code == 49:
			st.bg = ""
		}
	}
}

// extendedLen counts the parameters of a 38/48 colour: 38;5;N or 38;2;R;G;B.
func extendedLen(parts []string) int {
	if len(parts) >= 3 && parts[1] == "5" {
		return 3
	}
	if len(parts) >= 5 && parts[1] == "2" {
		return 5
	}
	return len(parts)
}

// sequence returns the SGR that re-establishes st, or "" when plain.
func (st *sgrState) sequence() string {
	var codes []string
	for code, on := range st.attrs {
		if on {
			codes = append(codes, strconv.Itoa(code))
		}
	}
	if st.fg != "" {
		codes = append(codes, st.fg)
	}
	if st.bg != "" {
		codes = append(codes, st.bg)
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// Layer renders s on top of the base SGR sequence. Every style change
// inside s is rewritten as reset, base, then the accumulated state of s,
// so a reset in s never drops base. The result ends with a reset.
func Layer(base, s string) string {
	if base == "" {
		return s
	}
	var (
		b  strings.Builder
		st sgrState
	)
	b.Grow(len(s) + len(base) + 8)
	b.WriteString(base)
	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := skipANSISequence(s, i)
		seq := s[i:end]
		i = end
		if len(seq) < 3 || seq[1] != '[' || seq[len(seq)-1] != 'm' {
			b.WriteString(seq)
			continue
		}
		st.apply(seq[2 : len(seq)-1])
		b.WriteString("\x1b[0m")
		b.WriteString(base)
		b.WriteString(st.sequence())
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// Style is the graphic state that a run of SGR sequences leaves behind.
// FG and BG hold the raw colour parameters, e.g. "31", "93" or "38;5;208".
type Style struct {
	Bold, Dim, Italic, Underline, Reverse bool

	FG, BG string
}

// ParseSGR folds every SGR sequence in code into one Style. Text and
// non-SGR sequences are ignored.
func ParseSGR(code string) Style {
	var st sgrState
	for i := 0; i < len(code); {
		if code[i] != '\x1b' {
			i++
			continue
		}
		end := skipANSISequence(code, i)
		if seq := code[i:end]; len(seq) >= 3 && seq[1] == '[' && seq[len(seq)-1] == 'm' {
			st.apply(seq[2 : len(seq)-1])
		}
		i = end
	}
	return Style{
		Bold:      st.attrs[1],
		Dim:       st.attrs[2],
		Italic:    st.attrs[3],
		Underline: st.attrs[4],
		Reverse:   st.attrs[7],
		FG:        st.fg,
		BG:        st.bg,
	}
}
