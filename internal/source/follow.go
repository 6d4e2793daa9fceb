// ABOUTME: Follower tails a growing file and delivers complete new lines as entries
// ABOUTME: Polls size on an interval; a truncated file restarts from the beginning

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mauromedda/pi-vlist/internal/log"
)

// FollowSpec names a file to tail after its initial read.
type FollowSpec struct {
	Path     string
	Offset   int64
	Interval time.Duration
}

// Follower returns a Follower tailing s.Path.
func (s FollowSpec) Follower(nextID int, sink func([]Entry)) *Follower {
	return NewFollower(s.Path, s.Offset, nextID, s.Interval, sink)
}

// Follower appends lines written to a file after an initial read.
type Follower struct {
	path     string
	interval time.Duration
	sink     func([]Entry)

	offset  int64
	nextID  int
	partial []byte
}

// NewFollower resumes path at offset, numbering new entries from nextID.
// sink receives each non-empty batch.
func NewFollower(path string, offset int64, nextID int, interval time.Duration, sink func([]Entry)) *Follower {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Follower{path: path, interval: interval, sink: sink, offset: offset, nextID: nextID}
}

// Run polls until ctx is done. Poll errors are logged and retried.
func (f *Follower) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := f.Poll(); err != nil {
				log.Warn("follow %s: %v", f.path, err)
			}
		}
	}
}

// Poll reads whatever was appended since the last call and delivers the
// complete lines. It returns the number of entries delivered.
func (f *Follower) Poll() (int, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return 0, fmt.Errorf("opening: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}
	if info.Size() < f.offset {
		log.Info("follow %s: file truncated, rereading", f.path)
		f.offset = 0
		f.partial = f.partial[:0]
	}
	if info.Size() == f.offset {
		return 0, nil
	}

	data, err := io.ReadAll(io.NewSectionReader(file, f.offset, info.Size()-f.offset))
	if err != nil {
		return 0, fmt.Errorf("reading: %w", err)
	}
	f.offset += int64(len(data))

	buf := append(f.partial, data...)
	last := bytes.LastIndexByte(buf, '\n')
	if last < 0 {
		f.partial = buf
		return 0, nil
	}
	f.partial = append([]byte(nil), buf[last+1:]...)

	entries, err := Lines(bytes.NewReader(buf[:last+1]), f.nextID)
	if err != nil {
		return 0, err
	}
	f.nextID += len(entries)
	if len(entries) > 0 {
		f.sink(entries)
	}
	return len(entries), nil
}
