// ABOUTME: Entry point for the Bubble Tea interactive TUI
// ABOUTME: Creates the tea.Program, starts tailing and hot reload, and blocks until exit

package btea

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pi-vlist/internal/config"
	"github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/source"
)

// Run starts the Bubble Tea app and blocks until the user exits or ctx
// is cancelled. Extra program options are appended after the defaults.
func Run(ctx context.Context, deps AppDeps, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewListModel(deps)
	defer m.sh.unsub()

	p := tea.NewProgram(
		m,
		append([]tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithOutput(os.Stderr),
		}, opts...)...,
	)

	// Inject the program reference into the shared state.
	// tea.NewProgram copies the model value but shares the pointer.
	m.sh.program = p

	if deps.Follow != nil {
		f := deps.Follow.Follower(m.sh.nextID(), func(entries []source.Entry) {
			p.Send(EntriesMsg{Entries: entries})
		})
		go func() {
			if err := f.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warn("follow: %v", err)
			}
		}()
	}
	if deps.Watch != nil {
		w := deps.Watch(func(s *config.Settings, err error) {
			p.Send(ReloadMsg{Settings: s, Err: err})
		})
		go w.Run(ctx)
	}

	_, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
