// ABOUTME: CLI entry point for pi-vlist, a virtualized list viewer for files and trees
// ABOUTME: Parses flags, loads config, reads the data source, dispatches to the selected mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It presets the lipgloss background so Bubble Tea never sends the
	// OSC 10/11 queries whose replies would leak into the input stream.
	_ "github.com/mauromedda/pi-vlist/internal/termfix"

	"github.com/mauromedda/pi-vlist/internal/config"
	pilog "github.com/mauromedda/pi-vlist/internal/log"
	"github.com/mauromedda/pi-vlist/internal/mode/interactive"
	"github.com/mauromedda/pi-vlist/internal/mode/interactive/btea"
	"github.com/mauromedda/pi-vlist/internal/mode/print"
	"github.com/mauromedda/pi-vlist/internal/mode/session"
	"github.com/mauromedda/pi-vlist/internal/source"
	"github.com/mauromedda/pi-vlist/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("pi-vlist %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, args, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the selected mode.
func run(ctx context.Context, args cliArgs, stdin io.Reader, stdout io.Writer) error {
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := loadSettings(args, cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if args.logFile != "" {
		closer, err := pilog.OpenFile(args.logFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	} else if settings.Mode != config.ModePrint {
		// Log lines on stderr would tear the full-screen frame.
		defer pilog.SetOutput(pilog.SetOutput(io.Discard))
	}

	data, err := loadData(ctx, args, settings, stdin)
	if err != nil {
		return err
	}
	pilog.Debug("loaded %d entries from %s", len(data.entries), data.title)

	ss, err := session.New(settings)
	if err != nil {
		return err
	}
	defer ss.Stop()

	var watch func(func(*config.Settings, error)) *config.Watcher
	if args.watch && settings.Mode != config.ModePrint {
		watch = func(onReload func(*config.Settings, error)) *config.Watcher {
			return newWatcher(args, cwd, onReload)
		}
	}

	switch settings.Mode {
	case config.ModePrint:
		return print.Run(ctx, stdout, ss, data.entries, print.Config{
			Format: args.format,
			Offset: args.offset,
			Width:  args.width,
			Height: args.height,
		})

	case config.ModeRaw:
		term := terminal.NewProcessTerminal()
		if !term.IsTerminal() {
			return errors.New("raw mode needs a terminal on stdin")
		}
		app := interactive.NewFromDeps(interactive.AppDeps{
			Terminal: term,
			Session:  ss,
			Entries:  data.entries,
			Title:    data.title,
			Version:  version,
			Follow:   data.follow,
			Watch:    watch,

			HistoryFile: config.HistoryFile(),
		})
		return app.Run(ctx)

	default:
		return btea.Run(ctx, btea.AppDeps{
			Session: ss,
			Entries: data.entries,
			Title:   data.title,
			Version: version,
			Follow:  data.follow,
			Watch:   watch,

			HistoryFile: config.HistoryFile(),
		})
	}
}

// loadSettings merges config files and CLI overrides.
func loadSettings(args cliArgs, cwd string) (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if args.config != "" {
		s, err = config.LoadFile(args.config)
	} else {
		s, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}
	applyOverrides(s, args)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// applyOverrides writes CLI flags that were set over s.
func applyOverrides(s *config.Settings, args cliArgs) {
	if args.mode != "" {
		s.Mode = args.mode
	}
	if args.itemHeight != 0 {
		s.ItemHeight = args.itemHeight
	}
	if args.overscan >= 0 {
		s.Overscan = args.overscan
	}
	if args.theme != "" {
		s.Theme = args.theme
	}
}

// newWatcher watches the files loadSettings read. Reloaded settings get
// the same CLI overrides.
func newWatcher(args cliArgs, cwd string, onReload func(*config.Settings, error)) *config.Watcher {
	cb := func(s *config.Settings, err error) {
		if err == nil {
			applyOverrides(s, args)
			err = s.Validate()
		}
		onReload(s, err)
	}
	if args.config != "" {
		return config.NewFileWatcher(args.config, cb)
	}
	return config.NewWatcher(cwd, cb)
}

type dataSet struct {
	title   string
	entries []source.Entry
	follow  *source.FollowSpec
}

// loadData reads the tree, file or stdin the arguments name.
func loadData(ctx context.Context, args cliArgs, s *config.Settings, stdin io.Reader) (dataSet, error) {
	if args.tree != "" {
		entries, err := source.LoadTree(ctx, args.tree, s.TreeDepth)
		if err != nil {
			return dataSet{}, err
		}
		return dataSet{title: args.tree, entries: entries}, nil
	}

	if len(args.paths) > 1 {
		return dataSet{}, fmt.Errorf("expected one file, got %d", len(args.paths))
	}
	if len(args.paths) == 0 || args.paths[0] == "-" {
		if s.Mode != config.ModePrint {
			return dataSet{}, errors.New("interactive modes need a file or --tree; pipe stdin with --mode print")
		}
		if args.follow {
			return dataSet{}, errors.New("--follow needs a file")
		}
		entries, err := source.Lines(stdin, 0)
		if err != nil {
			return dataSet{}, fmt.Errorf("reading stdin: %w", err)
		}
		return dataSet{title: "stdin", entries: entries}, nil
	}

	path := args.paths[0]
	follow := args.follow && s.Mode != config.ModePrint
	entries, offset, err := source.ReadFile(path, follow)
	if err != nil {
		return dataSet{}, err
	}
	d := dataSet{title: path, entries: entries}
	if follow {
		d.follow = &source.FollowSpec{Path: path, Offset: offset, Interval: s.FollowInterval}
	}
	return d, nil
}
