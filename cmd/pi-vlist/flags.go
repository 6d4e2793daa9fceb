// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --mode, --item-height, --tree, --follow, --offset, --config, --theme, --version

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	verbose    bool
	logFile    string
	mode       string
	itemHeight int
	overscan   int
	offset     int
	width      int
	height     int
	format     string
	tree       string
	follow     bool
	config     string
	theme      string
	watch      bool
	version    bool

	paths []string
}

func parseFlags(name string, argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.StringVar(&args.logFile, "log-file", "", "Append log output to this file")
	fs.StringVar(&args.mode, "mode", "", "Front-end: interactive, raw or print")
	fs.IntVar(&args.itemHeight, "item-height", 0, "Lines per item (overrides config)")
	fs.IntVar(&args.overscan, "overscan", -1, "Extra slots beyond the viewport (overrides config)")
	fs.IntVar(&args.offset, "offset", 0, "Print mode: scroll offset in lines")
	fs.IntVar(&args.width, "width", 0, "Print mode: output width (default 80)")
	fs.IntVar(&args.height, "height", 0, "Print mode: window height (default 24)")
	fs.StringVar(&args.format, "format", "text", "Print mode: text, plain or jsonl")
	fs.StringVar(&args.tree, "tree", "", "List a directory tree instead of file lines")
	fs.BoolVar(&args.follow, "follow", false, "Tail the file for appended lines")
	fs.StringVar(&args.config, "config", "", "Settings file (default: global and project config)")
	fs.StringVar(&args.theme, "theme", "", "Theme name or theme file (overrides config)")
	fs.BoolVar(&args.watch, "watch", true, "Reload settings when config files change")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.paths = fs.Args()
	return args, nil
}
