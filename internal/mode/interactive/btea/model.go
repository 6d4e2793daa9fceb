// ABOUTME: Bubble Tea front-end: a tea.Model around the shared list session
// ABOUTME: Maps tea key and mouse messages onto the ListView; help page rendered by glamour

package btea

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/session"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui"
	"github.com/mauromedda/pi-vlist/pkg/tui/clipboard"
	"github.com/mauromedda/pi-vlist/pkg/tui/component"
	"github.com/mauromedda/pi-vlist/pkg/tui/key"
	"github.com/mauromedda/pi-vlist/pkg/tui/width"
	"github.com/mauromedda/pi-vlist/pkg/vlist"
)

const helpMarkdown = `# pi-vlist

| Key | Action |
|-----|--------|
| j / k, ↑ / ↓ | move selection |
| PgUp / PgDn | page |
| Ctrl+U / Ctrl+D | half page |
| g / G, Home / End | first / last |
| Enter | open item |
| / | fuzzy filter, Esc clears, ↑ / ↓ recall |
| y | copy item to clipboard |
| d | delete item |
| r | re-measure viewport |
| q, Ctrl+C | quit |

Mouse: the wheel scrolls, a click selects, a double click opens and a
right click shows the item menu.`

// chromeLines is the header plus the footer.
const chromeLines = 2

// AppDeps bundles the dependencies of the Bubble Tea front-end.
type AppDeps struct {
	Session *session.Session
	Entries []source.Entry
	Title   string
	Version string

	// HistoryFile persists filter patterns when set.
	HistoryFile string

	// Follow tails a file when set.
	Follow *source.FollowSpec
	// Watch builds a settings watcher around the reload callback. Nil
	// disables hot reload.
	Watch func(onReload func(*config.Settings, error)) *config.Watcher
}

// EntriesMsg carries lines read from a followed file.
type EntriesMsg struct {
	Entries []source.Entry
}

// ReloadMsg carries reloaded settings or the load error.
type ReloadMsg struct {
	Settings *config.Settings
	Err      error
}

// CopiedMsg reports the result of a clipboard copy.
type CopiedMsg struct {
	Text string
	Err  error
}

// shared is the state engine callbacks and the program reach through a
// pointer, since tea.Program copies the model value.
type shared struct {
	session *session.Session
	md      *MarkdownRenderer
	history *component.History
	program *tea.Program
	unsub   func()

	histFile string

	mu     sync.Mutex
	all    []source.Entry
	status string
}

// ListModel is the root tea.Model.
type ListModel struct {
	sh      *shared
	title   string
	version string

	width  int
	height int

	filtering bool
	pattern   string
	showHelp  bool
	quitting  bool
}

// NewListModel loads deps.Entries into the session and returns the model.
func NewListModel(deps AppDeps) ListModel {
	sh := &shared{
		session:  deps.Session,
		md:       NewMarkdownRenderer(),
		history:  component.NewHistory(),
		histFile: deps.HistoryFile,
		all:      deps.Entries,
	}
	if sh.histFile != "" {
		if err := sh.history.LoadFromFile(sh.histFile); err != nil {
			log.Warn("filter history: %v", err)
		}
	}
	sh.session.View.SetOrigin(1)
	sh.session.View.SetOnActivate(sh.activate)
	sh.unsub = sh.session.List.Subscribe(sh.onEvent)
	sh.session.SetData(deps.Entries)

	ver := deps.Version
	if ver == "" {
		ver = "dev"
	}
	return ListModel{sh: sh, title: deps.Title, version: ver}
}

// Init implements tea.Model.
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sh.session.View.SetSize(msg.Width, max(msg.Height-chromeLines, 0))
		return m, nil

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		if mm, ok := convertMouse(msg); ok {
			m.sh.session.View.HandleMouse(mm)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !msg.Paste {
			return m.splitRunes(msg)
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)

	case EntriesMsg:
		m.appendEntries(msg.Entries)
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.sh.setStatus("copy failed: " + msg.Err.Error())
		} else {
			m.sh.setStatus("copied: " + msg.Text)
		}
		return m, nil

	case ReloadMsg:
		err := msg.Err
		if err == nil {
			err = m.sh.session.Apply(msg.Settings)
		}
		if err != nil {
			log.Warn("reload settings: %v", err)
			m.sh.setStatus("config error: " + err.Error())
		} else {
			m.sh.setStatus("config reloaded")
		}
		return m, nil
	}
	return m, nil
}

// splitRunes replays runes that arrived in one read as single keys, so
// "jq" moves the selection and then quits.
func (m ListModel) splitRunes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		model tea.Model = m
		cmds  []tea.Cmd
	)
	for _, r := range msg.Runes {
		var cmd tea.Cmd
		model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
		cmds = append(cmds, cmd)
		if model.(ListModel).quitting {
			break
		}
	}
	return model, tea.Sequence(cmds...)
}

func (m ListModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.sh.session.View
	page := m.pageItems()

	switch msg.String() {
	case "ctrl+c", "q":
		m.sh.unsub()
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.filtering = true
		m.sh.history.Reset()
		if m.pattern != "" {
			m.pattern = ""
			m.refilter()
		}
	case "?":
		m.showHelp = true
	case "d":
		m.sh.deleteSelected()
	case "y":
		return m, m.sh.copySelected()
	case "r":
		m.sh.session.List.DoResize()
		m.sh.setStatus("re-measured")
	case "up", "k":
		view.MoveSelection(-1)
	case "down", "j":
		view.MoveSelection(1)
	case "pgup":
		view.MoveSelection(-page)
	case "pgdown":
		view.MoveSelection(page)
	case "ctrl+u":
		view.MoveSelection(-max(page/2, 1))
	case "ctrl+d":
		view.MoveSelection(max(page/2, 1))
	case "home", "g":
		view.Select(0)
	case "end", "G":
		view.Select(view.Len() - 1)
	case "enter":
		if view.Len() > 0 {
			m.sh.activate(view.Selected())
		}
	}
	return m, nil
}

func (m ListModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.sh.unsub()
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.filtering = false
		m.pattern = ""
		m.sh.history.Reset()
	case tea.KeyEnter:
		m.filtering = false
		m.sh.history.Add(m.pattern)
		if m.sh.histFile != "" {
			if err := m.sh.history.SaveToFile(m.sh.histFile); err != nil {
				log.Warn("filter history: %v", err)
			}
		}
		return m, nil
	case tea.KeyUp:
		if p := m.sh.history.Prev(); p != "" {
			m.pattern = p
		}
	case tea.KeyDown:
		m.pattern = m.sh.history.Next()
	case tea.KeyBackspace:
		if m.pattern == "" {
			return m, nil
		}
		_, size := utf8.DecodeLastRuneInString(m.pattern)
		m.pattern = m.pattern[:len(m.pattern)-size]
	case tea.KeySpace:
		m.pattern += " "
	case tea.KeyRunes:
		m.pattern += string(msg.Runes)
	default:
		return m, nil
	}
	m.refilter()
	return m, nil
}

// refilter applies the current pattern to the full dataset.
func (m ListModel) refilter() {
	m.sh.mu.Lock()
	all := m.sh.all
	m.sh.mu.Unlock()
	n := m.sh.session.Filter(m.pattern, all)
	log.Debug("filter %q: %d of %d", m.pattern, n, len(all))
	m.sh.session.View.Select(0)
}

// appendEntries adds followed lines, keeping the selection on the tail
// when it was there.
func (m ListModel) appendEntries(entries []source.Entry) {
	view := m.sh.session.View
	m.sh.mu.Lock()
	m.sh.all = append(m.sh.all, entries...)
	all := m.sh.all
	m.sh.mu.Unlock()

	atEnd := view.Len() == 0 || view.Selected() == view.Len()-1
	if m.pattern != "" {
		m.sh.session.Filter(m.pattern, all)
	} else {
		m.sh.session.List.InsertData(entries)
	}
	if atEnd {
		view.Select(view.Len() - 1)
	}
}

func (m ListModel) pageItems() int {
	ih := max(m.sh.session.Settings().ItemHeight, 1)
	return max((m.height-chromeLines)/ih, 1)
}

// View implements tea.Model.
func (m ListModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	st := Styles()

	if m.showHelp {
		theme := m.sh.session.Settings().Theme
		body := m.sh.md.Render(helpMarkdown, max(min(m.width-4, 64), 10), theme)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.HelpBox.Render(body))
	}

	view := m.sh.session.View
	n, sel := view.Len(), view.Selected()

	m.sh.mu.Lock()
	total, status := len(m.sh.all), m.sh.status
	m.sh.mu.Unlock()

	head := fmt.Sprintf("pi-vlist %s | %s", m.version, m.title)
	if m.pattern != "" {
		head += fmt.Sprintf(" | %d of %d", n, total)
	} else {
		head += fmt.Sprintf(" | %d items", n)
	}

	var foot string
	switch {
	case m.filtering:
		foot = "/" + m.pattern
	case n > 0:
		foot = fmt.Sprintf("%d/%d", sel+1, n)
	default:
		foot = "0/0"
	}
	if !m.filtering {
		if status != "" {
			foot += "  " + status
		}
		foot += "  ? help"
	}

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	view.Render(buf, m.width)

	var b strings.Builder
	b.WriteString(st.Header.Render(width.TruncateToWidth(head, m.width)))
	for _, line := range buf.Lines {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	b.WriteByte('\n')
	b.WriteString(st.Footer.Render(width.TruncateToWidth(foot, m.width)))
	return b.String()
}

// convertMouse maps a Bubble Tea mouse message onto the terminal
// package's decoded report.
func convertMouse(msg tea.MouseMsg) (key.Mouse, bool) {
	mm := key.Mouse{X: msg.X, Y: msg.Y, Shift: msg.Shift, Alt: msg.Alt, Ctrl: msg.Ctrl}
	switch msg.Button {
	case tea.MouseButtonLeft:
		mm.Button = key.MouseLeft
	case tea.MouseButtonMiddle:
		mm.Button = key.MouseMiddle
	case tea.MouseButtonRight:
		mm.Button = key.MouseRight
	case tea.MouseButtonWheelUp:
		mm.Button = key.MouseWheelUp
	case tea.MouseButtonWheelDown:
		mm.Button = key.MouseWheelDown
	case tea.MouseButtonNone:
		mm.Button = key.MouseNone
	default:
		return key.Mouse{}, false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		mm.Action = key.MousePress
	case tea.MouseActionRelease:
		mm.Action = key.MouseRelease
	case tea.MouseActionMotion:
		mm.Action = key.MouseMotion
	}
	return mm, true
}

// onEvent runs after the engine lock is released.
func (sh *shared) onEvent(ev vlist.Event) {
	if ev.Index < 0 {
		return
	}
	switch ev.Kind {
	case vlist.EventClick:
		sh.session.View.Select(ev.Index)
	case vlist.EventDoubleClick:
		sh.activate(ev.Index)
	case vlist.EventContextMenu:
		sh.session.View.Select(ev.Index)
		if e, ok := sh.session.List.At(ev.Index); ok {
			sh.setStatus("menu: " + e.FilterText())
		}
	}
}

func (sh *shared) activate(index int) {
	if e, ok := sh.session.List.At(index); ok {
		sh.setStatus("open: " + e.FilterText())
	}
}

// copySelected returns a command that copies the selected item.
func (sh *shared) copySelected() tea.Cmd {
	e, ok := sh.session.List.At(sh.session.View.Selected())
	if !ok {
		return nil
	}
	text := e.FilterText()
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: clipboard.Write(text)}
	}
}

func (sh *shared) deleteSelected() {
	removed := sh.session.List.DeleteData(sh.session.View.Selected())
	if len(removed) == 0 {
		return
	}
	id := removed[0].ID
	sh.mu.Lock()
	for i, e := range sh.all {
		if e.ID == id {
			sh.all = append(sh.all[:i:i], sh.all[i+1:]...)
			break
		}
	}
	sh.status = "deleted: " + removed[0].Text
	sh.mu.Unlock()
}

func (sh *shared) setStatus(s string) {
	sh.mu.Lock()
	sh.status = s
	sh.mu.Unlock()
}

func (sh *shared) nextID() int {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	next := 0
	for _, e := range sh.all {
		next = max(next, e.ID+1)
	}
	return next
}
