// ABOUTME: Session wires a ListView surface to a vlist engine over source entries
// ABOUTME: Shared by the raw, print and Bubble Tea front-ends; applies settings and hot reloads

package session

import (
	"fmt"
	"sync"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui/component"
	"github.com/mauromedda/pi-vlist/pkg/tui/fuzzy"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/vlist"
)

// List is the engine specialised to entries drawn as terminal rows.
type List = vlist.List[source.Entry, *component.Row]

// Session owns one view, one engine and the row styling state.
type Session struct {
	View *component.ListView
	List *List

	itemHeight int

	mu       sync.Mutex
	settings config.Settings
	matches  map[int][]int // entry ID -> matched byte offsets in Display
}

// New builds a started session for settings. The view is sized later by
// the front-end.
func New(s *config.Settings) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ss := &Session{
		View:       component.NewListView(s.ItemHeight),
		itemHeight: s.ItemHeight,
		settings:   *s,
	}
	ss.View.SetPlaceholder(s.Placeholder)
	ss.View.SetWheelStep(s.WheelStep)

	l, err := vlist.New[source.Entry, *component.Row](ss.View, ss.options(s))
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}
	ss.List = l
	if err := applyTheme(s.Theme); err != nil {
		return nil, err
	}
	l.Start()
	return ss, nil
}

// options maps settings onto engine options.
func (ss *Session) options(s *config.Settings) vlist.Options[source.Entry, *component.Row] {
	opts := vlist.DefaultOptions(ss.View.NewRow, ss.renderRow)
	opts.ItemHeight = s.ItemHeight
	opts.Overscan = s.Overscan
	opts.FixedSize = s.FixedSize
	opts.Suppressible = !s.ScrollbarEnabled()
	if s.ReclaimDelay != nil {
		opts.ReclaimDelay = *s.ReclaimDelay
	}
	if s.DoubleClick > 0 {
		opts.DoubleClickInterval = s.DoubleClick
	}
	opts.ClearHandler = (*component.Row).Clear
	return opts
}

// Apply pushes reloaded settings into the running session. Geometry
// changes are ignored by the engine; theme and scrollbar apply live.
func (ss *Session) Apply(s *config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := ss.List.UpdateOptions(ss.options(s)); err != nil {
		return fmt.Errorf("updating options: %w", err)
	}
	if err := applyTheme(s.Theme); err != nil {
		return err
	}
	ss.View.SetPlaceholder(s.Placeholder)
	ss.View.SetWheelStep(s.WheelStep)

	ss.mu.Lock()
	ss.settings = *s
	ss.mu.Unlock()
	log.Debug("session: settings reloaded (theme %q, scrollbar %t)", s.Theme, s.ScrollbarEnabled())
	return nil
}

// Settings returns the settings currently in effect.
func (ss *Session) Settings() config.Settings {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.settings
}

// SetData replaces the dataset and clears any filter highlighting.
func (ss *Session) SetData(entries []source.Entry) {
	ss.mu.Lock()
	ss.matches = nil
	ss.mu.Unlock()
	ss.List.UpdateData(entries)
}

// Filter shows the entries of all that match pattern, best first, with
// the matched characters highlighted. An empty pattern restores all.
func (ss *Session) Filter(pattern string, all []source.Entry) int {
	ranked := fuzzy.Filter(pattern, all, source.Entry.FilterText)
	entries := make([]source.Entry, len(ranked))
	var matches map[int][]int
	if pattern != "" {
		matches = make(map[int][]int, len(ranked))
	}
	for i, m := range ranked {
		entries[i] = m.Item
		if matches != nil {
			matches[m.Item.ID] = m.Item.DisplayMatches(m.MatchedIndexes)
		}
	}

	ss.mu.Lock()
	ss.matches = matches
	ss.mu.Unlock()
	ss.List.UpdateData(entries)
	return len(entries)
}

// Stop shuts the engine down.
func (ss *Session) Stop() {
	ss.List.Stop()
}

// renderRow is the engine's render handler. It runs with the engine
// lock held.
func (ss *Session) renderRow(r *component.Row, e source.Entry, index int) {
	p := theme.Current().Palette

	ss.mu.Lock()
	matched := ss.matches[e.ID]
	ss.mu.Unlock()

	text := e.Display()
	if len(matched) > 0 {
		text = fuzzy.Highlight(text, matched, p.Match.Apply)
	} else if e.IsDir {
		text = p.Directory.Apply(text)
	}

	lines := []string{text}
	if ss.itemHeight > 1 {
		detail := e.Path
		if detail == "" {
			detail = fmt.Sprintf("#%d", e.ID+1)
		}
		lines = append(lines, p.Muted.Apply("  "+detail))
	}
	r.SetLines(index, lines...)
}

func applyTheme(name string) error {
	t, err := theme.Resolve(name, config.ThemesDir())
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	theme.Set(t)
	return nil
}
