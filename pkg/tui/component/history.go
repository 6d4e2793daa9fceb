// ABOUTME: Filter pattern history with up/down recall and file persistence
// ABOUTME: Most recent first; duplicates move to the front; capped at maxHistory entries

package component

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const maxHistory = 200

// History remembers accepted filter patterns.
type History struct {
	mu      sync.Mutex
	entries []string // oldest first
	pos     int      // -1 means "no selection" (at the input line)
}

// NewHistory creates a new empty History.
func NewHistory() *History {
	return &History{pos: -1}
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Add records entry as the most recent pattern. Blank entries are
// ignored and an existing copy is moved to the front.
func (h *History) Add(entry string) {
	entry = strings.TrimSpace(entry)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pos = -1
	if entry == "" {
		return
	}
	for i, e := range h.entries {
		if e == entry {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, entry)
	if over := len(h.entries) - maxHistory; over > 0 {
		h.entries = h.entries[over:]
	}
}

// Prev steps to the next older entry and returns it. At the oldest
// entry it stays put.
func (h *History) Prev() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pos < len(h.entries)-1 {
		h.pos++
	}
	return h.currentLocked()
}

// Next steps toward the most recent entry. Past it, it returns "" and
// the position is back at the input line.
func (h *History) Next() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pos > -1 {
		h.pos--
	}
	return h.currentLocked()
}

// Current returns the selected entry, or "" if none.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentLocked()
}

func (h *History) currentLocked() string {
	if h.pos < 0 || h.pos >= len(h.entries) {
		return ""
	}
	// pos 0 = most recent (last in entries slice)
	return h.entries[len(h.entries)-1-h.pos]
}

// Reset returns the navigation position to "no selection".
func (h *History) Reset() {
	h.mu.Lock()
	h.pos = -1
	h.mu.Unlock()
}

// SaveToFile writes history entries to the given file path, one per line.
func (h *History) SaveToFile(path string) error {
	h.mu.Lock()
	content := strings.Join(h.entries, "\n") + "\n"
	h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// LoadFromFile reads history entries from the given file path.
// Returns nil if the file does not exist (fresh start).
func (h *History) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading history file: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
	for line := range strings.SplitSeq(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			h.entries = append(h.entries, trimmed)
		}
	}
	if over := len(h.entries) - maxHistory; over > 0 {
		h.entries = h.entries[over:]
	}
	h.pos = -1
	return nil
}
