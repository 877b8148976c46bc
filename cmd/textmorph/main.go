// Package main is the entry point for the textmorph block transformer.
//
// In filter mode it reads a document from a file or stdin, applies one
// named transformation to a line range or the paragraph under a cursor
// line, and writes the rewritten document to stdout. With -i it opens
// the document in an interactive terminal session instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/textmorph/internal/app"
	"github.com/dshills/textmorph/internal/engine/buffer"
	"github.com/dshills/textmorph/internal/host"
	"github.com/dshills/textmorph/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	app app.Options

	file        string
	action      string
	lines       string
	cursor      int
	interactive bool
	listActions bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts.app)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if opts.listActions {
		for _, action := range application.Actions() {
			fmt.Println(action)
		}
		return 0
	}

	buf, err := loadDocument(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	h := host.NewBufferHost(buf)

	if opts.interactive {
		editor, err := tui.New(application, h)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		if err := editor.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.action == "" {
		fmt.Fprintln(os.Stderr, "Error: -t action is required (or -i for interactive mode)")
		return 2
	}

	if err := selectTarget(h, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	res := application.Apply(h, opts.action)
	if res.IsError() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		return 1
	}

	fmt.Print(buf.Text())
	return 0
}

// loadDocument reads the document from a file, or stdin when path is
// empty or "-".
func loadDocument(path string) (*buffer.Buffer, error) {
	if path == "" || path == "-" {
		return buffer.FromReader(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return buffer.FromReader(f)
}

// selectTarget points the host at the requested lines or cursor.
func selectTarget(h *host.BufferHost, opts options) error {
	if opts.lines != "" {
		start, end, err := parseRange(opts.lines)
		if err != nil {
			return err
		}
		h.Select(start, end)
		return nil
	}
	h.MoveCursor(opts.cursor)
	return nil
}

// parseRange parses "start:end" or a single line number.
func parseRange(s string) (int, int, error) {
	first, second, found := strings.Cut(s, ":")
	start, err := strconv.Atoi(first)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range %q", s)
	}
	if !found {
		return start, start, nil
	}
	end, err := strconv.Atoi(second)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range %q", s)
	}
	return start, end, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.file, "f", "", "Document to read (default stdin)")
	flag.StringVar(&opts.action, "t", "", "Transformation to apply (see -list)")
	flag.StringVar(&opts.lines, "lines", "", "Line range start:end (1-based, inclusive)")
	flag.IntVar(&opts.cursor, "cursor", 1, "Cursor line when no range is given")
	flag.BoolVar(&opts.interactive, "i", false, "Open an interactive terminal session")
	flag.BoolVar(&opts.listActions, "list", false, "List available transformations")
	flag.StringVar(&opts.app.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.app.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.app.PluginDir, "plugins", "", "Directory of Lua plugin scripts")
	flag.StringVar(&opts.app.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.app.Watch, "watch", false, "Reload configuration on change (interactive mode)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textmorph - text block transformations\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textmorph [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textmorph -t block.wrap -lines 3:10 -f notes.md\n")
		fmt.Fprintf(os.Stderr, "  textmorph -t block.quote -cursor 5 < notes.md\n")
		fmt.Fprintf(os.Stderr, "  textmorph -i -f notes.md\n")
		fmt.Fprintf(os.Stderr, "  textmorph -list\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("textmorph %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.app.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.app.LogLevel)
		os.Exit(2)
	}

	return opts
}
