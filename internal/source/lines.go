// ABOUTME: Line source: reads text into entries, NFC-normalised with tabs expanded
// ABOUTME: Used for log viewing from files or stdin; over-long lines are cut, never fatal

package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
)

const (
	tabWidth = 8

	// maxLineSize caps the bytes kept per line; the rest of the line is
	// skipped.
	maxLineSize = 1 << 20
)

// scanResult is what one pass over a reader produced.
type scanResult struct {
	lines []string
	// complete is the byte count up to and including the last newline.
	complete int64
	// total is the byte count read.
	total int64
	// tail reports that the last line had no terminating newline.
	tail bool
}

// lineBuf accumulates one line, keeping at most maxLineSize bytes and
// cutting on a rune boundary.
type lineBuf struct {
	b   []byte
	cut bool
}

func (l *lineBuf) write(p []byte) {
	if l.cut {
		return
	}
	if room := maxLineSize - len(l.b); len(p) > room {
		l.b = trimPartialRune(append(l.b, p[:room]...))
		l.cut = true
		return
	}
	l.b = append(l.b, p...)
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}

func (l *lineBuf) take() string {
	s := string(l.b)
	l.b, l.cut = l.b[:0], false
	return s
}

func scan(r io.Reader) (scanResult, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	var (
		res  scanResult
		line lineBuf
	)
	for {
		chunk, err := br.ReadSlice('\n')
		res.total += int64(len(chunk))
		switch {
		case err == nil:
			line.write(chunk[:len(chunk)-1])
			if line.cut {
				log.Debug("source: line %d cut to %d bytes", len(res.lines)+1, maxLineSize)
			}
			res.lines = append(res.lines, line.take())
			res.complete = res.total
		case errors.Is(err, bufio.ErrBufferFull):
			line.write(chunk)
		case errors.Is(err, io.EOF):
			line.write(chunk)
			if res.total > res.complete {
				res.lines = append(res.lines, line.take())
				res.tail = true
			}
			return res, nil
		default:
			return res, err
		}
	}
}

// Lines reads r to EOF and returns one entry per line. IDs start at first.
func Lines(r io.Reader, first int) ([]Entry, error) {
	res, err := scan(r)
	out := toEntries(res.lines, first)
	if err != nil {
		return out, fmt.Errorf("reading lines: %w", err)
	}
	return out, nil
}

// ReadFile loads path and returns its entries and the byte offset a
// Follower should resume from. With follow set, an unterminated last
// line is left out and the offset points at its start, so the Follower
// delivers it once it is complete.
func ReadFile(path string, follow bool) ([]Entry, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := scan(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	lines, offset := res.lines, res.complete
	switch {
	case res.tail && follow:
		lines = lines[:len(lines)-1]
	case res.tail:
		offset = res.total
	}
	return toEntries(lines, 0), offset, nil
}

func toEntries(lines []string, first int) []Entry {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Entry, len(lines))
	for i, text := range lines {
		out[i] = newLine(first+i, text)
	}
	return out
}

func newLine(id int, text string) Entry {
	text = strings.TrimSuffix(text, "\r")
	return Entry{ID: id, Text: width.ExpandTabs(norm.NFC.String(text), tabWidth)}
}
