// ABOUTME: Print mode: renders one window of the list to a writer and exits
// ABOUTME: Formats: styled text, plain text, and JSON lines of the visible items

package print

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/session"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
	"github.com/mauromedda/pi-vlist/pkg/vlist"
)

// Config configures a print run.
type Config struct {
	Format string // "text" (default), "plain", "jsonl"
	Offset int    // scroll offset in lines
	Width  int    // 0 = 80
	Height int    // 0 = 24
}

// Run loads entries into ss, scrolls to cfg.Offset and writes the
// visible window to w. An offset outside the scrollable range is
// ignored with a warning and the first window is printed.
func Run(ctx context.Context, w io.Writer, ss *session.Session, entries []source.Entry, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.Height <= 0 {
		cfg.Height = 24
	}
	f, err := newFormatter(cfg.Format)
	if err != nil {
		return err
	}

	ss.View.SetSize(cfg.Width, cfg.Height)
	ss.SetData(entries)
	if cfg.Offset != 0 && !ss.List.Scroll(cfg.Offset) {
		log.Warn("print: offset %d outside 0..%d, showing the top", cfg.Offset, max(ss.List.Extent()-cfg.Height, 0))
	}
	return f.write(w, ss, cfg)
}

// formatter abstracts output formatting.
type formatter interface {
	write(w io.Writer, ss *session.Session, cfg Config) error
}

func newFormatter(format string) (formatter, error) {
	switch format {
	case "", "text":
		return &textFormatter{}, nil
	case "plain":
		return &textFormatter{plain: true}, nil
	case "jsonl":
		return &jsonlFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textFormatter struct {
	plain bool
}

func (f *textFormatter) write(w io.Writer, ss *session.Session, cfg Config) error {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	ss.View.Render(buf, cfg.Width)

	var b strings.Builder
	for _, line := range buf.Lines {
		if f.plain {
			line = strings.TrimRight(width.StripANSI(line), " ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonlFormatter struct{}

// write emits a window header line then one line per slot the engine
// bound, in index order.
func (f *jsonlFormatter) write(w io.Writer, ss *session.Session, cfg Config) error {
	offset := ss.List.ScrollOffset()
	n := ss.List.Len()
	win := ss.List.Window()

	var bound []vlist.SlotState
	for _, st := range ss.List.Slots() {
		if st.Bound {
			bound = append(bound, st)
		}
	}
	slices.SortFunc(bound, func(a, b vlist.SlotState) int { return cmp.Compare(a.Index, b.Index) })

	var jw jwriter.Writer
	jw.RawString(`{"type":"window","offset":`)
	jw.Int(offset)
	jw.RawString(`,"height":`)
	jw.Int(cfg.Height)
	jw.RawString(`,"extent":`)
	jw.Int(ss.List.Extent())
	jw.RawString(`,"first":`)
	jw.Int(win.Start)
	jw.RawString(`,"last":`)
	jw.Int(min(win.End, n))
	jw.RawString(`,"slots":`)
	jw.Int(win.End - win.Start)
	jw.RawString(`,"total":`)
	jw.Int(n)
	jw.RawString("}\n")

	for _, st := range bound {
		e, ok := ss.List.At(st.Index)
		if !ok {
			continue
		}
		jw.RawString(`{"type":"item","index":`)
		jw.Int(st.Index)
		jw.RawString(`,"slot":`)
		jw.Int(st.ID)
		jw.RawString(`,"y":`)
		jw.Int(st.Y - offset)
		jw.RawString(`,"entry":`)
		jw.Int(e.ID)
		jw.RawString(`,"text":`)
		jw.String(e.Text)
		if e.Path != "" {
			jw.RawString(`,"path":`)
			jw.String(e.Path)
		}
		if e.Depth > 0 {
			jw.RawString(`,"depth":`)
			jw.Int(e.Depth)
		}
		if e.IsDir {
			jw.RawString(`,"dir":true`)
		}
		jw.RawString("}\n")
	}
	if jw.Error != nil {
		return jw.Error
	}
	_, err := jw.DumpTo(w)
	return err
}
