// ABOUTME: Interactive raw-terminal mode: header, virtualized list view and status footer
// ABOUTME: Routes keys and mouse to the list, runs fuzzy filtering, tailing and hot reload

package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/session"
	"github.com/mauromedda/pi-vlist/internal/source"
	tuipkg "github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/clipboard"
	"github.com/mauromedda/pi-vlist/pkg/tui/component"
	"github.com/mauromedda/pi-vlist/pkg/tui/input"
	"github.com/mauromedda/pi-vlist/pkg/tui/key"
	"github.com/mauromedda/pi-vlist/pkg/tui/terminal"
	"github.com/mauromedda/pi-vlist/pkg/tui/theme"
	"github.com/mauromedda/pi-vlist/pkg/vlist"
)

const helpText = `Keys
  j/k, Up/Down      move selection
  PgUp/PgDn         page
  Ctrl+U/Ctrl+D     half page
  g/G, Home/End     first / last
  Enter             open item
  /                 fuzzy filter (Esc clears, Up/Down recall)
  y                 copy item to clipboard
  d                 delete item
  r                 re-measure viewport
  ?                 this help
  q, Ctrl+C         quit

Mouse: wheel scrolls, click selects, double click opens,
right click shows the item menu.`

// AppDeps bundles all dependencies for the interactive App.
type AppDeps struct {
	Terminal terminal.Terminal
	Session  *session.Session
	Entries  []source.Entry
	Title    string
	Version  string

	// HistoryFile persists filter patterns when set.
	HistoryFile string

	// Follow tails a file when set.
	Follow *source.FollowSpec
	// Watch builds a settings watcher around the reload callback. Nil
	// disables hot reload.
	Watch func(onReload func(*config.Settings, error)) *config.Watcher
}

// App is the raw-terminal viewer.
type App struct {
	tui      *tuipkg.TUI
	term     terminal.Terminal
	session  *session.Session
	view     *component.ListView
	header   *component.Text
	footer   *component.Text
	help     *component.Text
	history  *component.History
	histFile string

	title   string
	version string
	follow  *source.FollowSpec
	watcher *config.Watcher

	cancel context.CancelFunc
	unsub  func()

	mu        sync.Mutex
	all       []source.Entry
	filtering bool
	pattern   string
	status    string
}

// NewFromDeps creates a fully-wired interactive app from dependencies.
func NewFromDeps(deps AppDeps) *App {
	a := &App{
		tui:      tuipkg.New(deps.Terminal, 80, 24),
		term:     deps.Terminal,
		session:  deps.Session,
		view:     deps.Session.View,
		header:   component.NewText(""),
		footer:   component.NewText(""),
		help:     component.NewText(helpText),
		history:  component.NewHistory(),
		histFile: deps.HistoryFile,
		title:    deps.Title,
		version:  deps.Version,
		follow:   deps.Follow,
		all:      deps.Entries,
		cancel:   func() {},
	}
	a.header.SetStyle(func(p theme.Palette) theme.Color { return p.Header })
	a.footer.SetStyle(func(p theme.Palette) theme.Color { return p.Footer })
	a.help.SetStyle(func(p theme.Palette) theme.Color { return p.Primary })

	container := a.tui.Container()
	container.Add(a.header)
	container.Add(a.view)
	container.Add(a.footer)

	a.view.SetOnChange(a.updateChrome)
	a.view.SetOnActivate(a.activate)
	a.unsub = a.session.List.Subscribe(a.onEvent)

	if deps.Watch != nil {
		a.watcher = deps.Watch(a.Reload)
	}
	if a.histFile != "" {
		if err := a.history.LoadFromFile(a.histFile); err != nil {
			log.Warn("filter history: %v", err)
		}
	}

	a.session.SetData(deps.Entries)
	a.updateChrome()
	return a
}

// Run is the blocking main loop. It takes over the terminal, reads input
// and blocks until ctx is cancelled, the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.cancel = cancel
	defer a.unsub()

	if err := a.term.Start(terminal.FullScreen); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer func() { _ = a.term.Stop() }()
	defer terminal.RestoreOnPanic(a.term)

	w, h, err := a.term.Size()
	if err != nil {
		w, h = 80, 24
	}
	a.Resize(w, h)
	stopResize := a.term.OnResize(a.Resize)
	defer stopResize()

	a.tui.Start()
	defer a.tui.Stop()
	a.tui.RequestRender()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return input.Run(gctx, a.term, a.HandleInput)
	})
	if a.follow != nil {
		f := a.follow.Follower(a.nextID(), a.Append)
		g.Go(func() error {
			defer terminal.RecoverGoroutine(a.term)
			if err := f.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	if a.watcher != nil {
		g.Go(func() error {
			defer terminal.RecoverGoroutine(a.term)
			a.watcher.Run(gctx)
			return nil
		})
	}
	return g.Wait()
}

// Resize lays the components out for a w x h terminal.
func (a *App) Resize(w, h int) {
	a.tui.SetSize(w, h)
	a.view.SetOrigin(a.tui.Container().Top(a.view, w))
}

// Quit ends Run.
func (a *App) Quit() {
	a.cancel()
}

// HandleInput routes one key or mouse token.
func (a *App) HandleInput(tok string) {
	defer a.tui.RequestRender()

	if a.tui.HasOverlay() {
		if _, ok := key.ParseMouse(tok); !ok {
			a.tui.PopOverlay()
		}
		return
	}

	a.mu.Lock()
	filtering := a.filtering
	a.mu.Unlock()
	if filtering {
		if _, ok := key.ParseMouse(tok); ok {
			a.view.HandleInput(tok)
			return
		}
		a.handleFilterKey(key.ParseKey(tok))
		return
	}

	k := key.ParseKey(tok)
	if k.Type == key.KeyCtrlC {
		a.Quit()
		return
	}
	if k.Type == key.KeyRune && !k.Alt {
		switch k.Rune {
		case 'q':
			a.Quit()
			return
		case '/':
			a.mu.Lock()
			a.filtering = true
			prev, all := a.pattern, a.all
			a.pattern = ""
			a.mu.Unlock()
			a.history.Reset()
			if prev != "" {
				a.session.Filter("", all)
				a.view.Select(0)
			}
			a.updateChrome()
			return
		case '?':
			w, _ := a.tui.Size()
			a.tui.PushOverlay(tuipkg.Overlay{Component: a.help, Position: tuipkg.OverlayCenter, Width: min(w, 64)})
			return
		case 'd':
			a.deleteSelected()
			return
		case 'y':
			a.copySelected()
			return
		case 'r':
			a.session.List.DoResize()
			a.setStatus("re-measured")
			return
		}
	}
	a.view.HandleInput(tok)
}

func (a *App) handleFilterKey(k key.Key) {
	a.mu.Lock()
	switch k.Type {
	case key.KeyEscape, key.KeyCtrlC:
		a.filtering = false
		a.pattern = ""
		a.history.Reset()
	case key.KeyEnter:
		a.filtering = false
		pattern := a.pattern
		a.mu.Unlock()
		a.history.Add(pattern)
		if a.histFile != "" {
			if err := a.history.SaveToFile(a.histFile); err != nil {
				log.Warn("filter history: %v", err)
			}
		}
		a.updateChrome()
		return
	case key.KeyUp:
		if p := a.history.Prev(); p != "" {
			a.pattern = p
		}
	case key.KeyDown:
		a.pattern = a.history.Next()
	case key.KeyBackspace:
		if a.pattern == "" {
			a.mu.Unlock()
			return
		}
		_, size := utf8.DecodeLastRuneInString(a.pattern)
		a.pattern = a.pattern[:len(a.pattern)-size]
	case key.KeyRune:
		a.pattern += string(k.Rune)
	default:
		a.mu.Unlock()
		return
	}
	pattern := a.pattern
	all := a.all
	a.mu.Unlock()

	n := a.session.Filter(pattern, all)
	log.Debug("filter %q: %d of %d", pattern, n, len(all))
	a.view.Select(0)
	a.updateChrome()
}

// Append adds entries read from the followed file. When the selection
// is on the last item it moves to the new last item.
func (a *App) Append(entries []source.Entry) {
	a.mu.Lock()
	a.all = append(a.all, entries...)
	pattern, all := a.pattern, a.all
	a.mu.Unlock()

	atEnd := a.view.Len() == 0 || a.view.Selected() == a.view.Len()-1
	if pattern != "" {
		a.session.Filter(pattern, all)
	} else {
		a.session.List.InsertData(entries)
	}
	if atEnd {
		a.view.Select(a.view.Len() - 1)
	}
	a.updateChrome()
	a.tui.RequestRender()
}

// Reload is the settings watcher callback.
func (a *App) Reload(s *config.Settings, err error) {
	if err == nil {
		err = a.session.Apply(s)
	}
	if err != nil {
		log.Warn("reload settings: %v", err)
		a.setStatus("config error: " + err.Error())
		return
	}
	w, h := a.tui.Size()
	a.Resize(w, h)
	a.setStatus("config reloaded")
}

func (a *App) deleteSelected() {
	idx := a.view.Selected()
	removed := a.session.List.DeleteData(idx)
	if len(removed) == 0 {
		return
	}
	id := removed[0].ID
	a.mu.Lock()
	for i, e := range a.all {
		if e.ID == id {
			a.all = append(a.all[:i:i], a.all[i+1:]...)
			break
		}
	}
	a.mu.Unlock()
	a.setStatus("deleted: " + removed[0].Text)
}

func (a *App) copySelected() {
	e, ok := a.session.List.At(a.view.Selected())
	if !ok {
		return
	}
	if err := clipboard.WriteOSC52(a.term, e.FilterText()); err != nil {
		a.setStatus("copy failed: " + err.Error())
		return
	}
	a.setStatus("copied: " + e.FilterText())
}

// activate handles Enter and double clicks.
func (a *App) activate(index int) {
	e, ok := a.session.List.At(index)
	if !ok {
		return
	}
	a.setStatus("open: " + e.FilterText())
}

// onEvent runs after the engine lock is released.
func (a *App) onEvent(ev vlist.Event) {
	if ev.Index < 0 {
		return
	}
	switch ev.Kind {
	case vlist.EventClick:
		a.view.Select(ev.Index)
	case vlist.EventDoubleClick:
		a.activate(ev.Index)
	case vlist.EventContextMenu:
		a.view.Select(ev.Index)
		if e, ok := a.session.List.At(ev.Index); ok {
			a.setStatus("menu: " + e.FilterText())
		}
	}
	a.tui.RequestRender()
}

func (a *App) setStatus(s string) {
	a.mu.Lock()
	a.status = s
	a.mu.Unlock()
	a.updateChrome()
	a.tui.RequestRender()
}

// updateChrome redraws header and footer text. It may run under the
// engine lock, so it only consults the view.
func (a *App) updateChrome() {
	n, sel := a.view.Len(), a.view.Selected()

	a.mu.Lock()
	total := len(a.all)
	filtering, pattern, status := a.filtering, a.pattern, a.status
	a.mu.Unlock()

	ver := a.version
	if ver == "" {
		ver = "dev"
	}
	head := fmt.Sprintf("pi-vlist %s | %s", ver, a.title)
	if pattern != "" {
		head += fmt.Sprintf(" | %d of %d", n, total)
	} else {
		head += fmt.Sprintf(" | %d items", n)
	}
	a.header.SetContent(head)

	var foot strings.Builder
	if filtering {
		foot.WriteString("/" + pattern)
	} else {
		if n > 0 {
			fmt.Fprintf(&foot, "%d/%d", sel+1, n)
		} else {
			foot.WriteString("0/0")
		}
		if status != "" {
			foot.WriteString("  " + status)
		}
		foot.WriteString("  ? help")
	}
	a.footer.SetContent(foot.String())
}

func (a *App) nextID() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := 0
	for _, e := range a.all {
		next = max(next, e.ID+1)
	}
	return next
}
