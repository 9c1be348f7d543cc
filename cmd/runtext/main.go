// Package main is the entry point for the runtext scroller.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/dshills/runtext/internal/app"
	"github.com/dshills/runtext/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// cliFlags are the global options shared by every command.
type cliFlags struct {
	configPath string
	logLevel   string

	text    string
	file    string
	stdin   bool
	command string
	script  string
	mpd     bool
	mpdAddr string
	mpdFmt  string

	width        int
	separator    string
	newline      string
	replacements string
	right        bool
	noRepeat     bool
	interval     time.Duration

	set map[string]bool
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := opts.apply(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := app.NewLogger(app.ParseLogLevel(cfg.LogLevel), os.Stderr)

	command := "run"
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	// With no width configured anywhere, fill the terminal; off a
	// terminal fall back to a fixed width.
	if cfg.Window == 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 1 {
			cfg.Window = w - 1
		} else {
			cfg.Window = config.FallbackWindow
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	switch command {
	case "run":
		err = runTerminal(ctx, application, args)
	case "waybar":
		err = runWaybar(ctx, application, args)
	case "screen":
		err = application.RunScreen(ctx)
	case "once":
		err = runOnce(application, args)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", command)
		flag.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runTerminal(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	perLine := fs.Bool("lines", false, "Print each frame on its own line instead of redrawing in place")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return application.RunTerminal(ctx, os.Stdout, !*perLine)
}

func runWaybar(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("waybar", flag.ExitOnError)
	tooltip := fs.Bool("tooltip", false, "Include a tooltip field in each frame")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return application.RunWaybar(ctx, os.Stdout, *tooltip)
}

func runOnce(application *app.App, args []string) error {
	fs := flag.NewFlagSet("once", flag.ExitOnError)
	statePath := fs.String("state", "", "Path of the resume state file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return application.Once(*statePath, os.Stdout)
}

func parseFlags() cliFlags {
	var opts cliFlags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	flag.StringVar(&opts.text, "S", "", "Scroll a literal string")
	flag.StringVar(&opts.file, "f", "", "Scroll the contents of a file")
	flag.BoolVar(&opts.stdin, "stdin", false, "Scroll standard input")
	flag.StringVar(&opts.command, "cmd", "", "Scroll the output of a command, re-run every tick (split on whitespace)")
	flag.StringVar(&opts.script, "script", "", "Scroll the output of a Lua script's content() function")
	flag.BoolVar(&opts.mpd, "mpd", false, "Scroll the current MPD song")
	flag.StringVar(&opts.mpdAddr, "mpd-addr", "", "MPD server address")
	flag.StringVar(&opts.mpdFmt, "mpd-format", "", "MPD format string, e.g. \"{artist} - {title}\"")

	flag.IntVar(&opts.width, "w", 0, "Window width in characters (default: terminal width)")
	flag.StringVar(&opts.separator, "s", "", "Separator shown between repetitions")
	flag.StringVar(&opts.newline, "n", "", "Replacement for newlines in the text")
	flag.StringVar(&opts.replacements, "e", "", "Replacement rules, e.g. \"&=&amp;,<=&lt;\", applied in order")
	flag.BoolVar(&opts.right, "r", false, "Scroll to the right instead of the left")
	flag.BoolVar(&opts.noRepeat, "R", false, "Do not scroll text that fits the window")
	flag.DurationVar(&opts.interval, "d", 0, "Delay between frames, e.g. 500ms")

	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Runtext - scroll text through a fixed-width window\n\n")
		fmt.Fprintf(os.Stderr, "Usage: runtext [options] [run|waybar|screen|once] [command options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  runtext -S \"hello world\" -w 8          Scroll a string\n")
		fmt.Fprintf(os.Stderr, "  runtext -f notes.txt -d 250ms           Scroll a file faster\n")
		fmt.Fprintf(os.Stderr, "  runtext -mpd waybar -tooltip            Feed a waybar module\n")
		fmt.Fprintf(os.Stderr, "  runtext -S abc -w 2 once -state ~/.rt   Advance one frame per call\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("Runtext %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts
}

// apply folds command line options over the file configuration. A
// source flag replaces the configured fragments with a single one.
func (o *cliFlags) apply(cfg *config.Config) error {
	if frag, ok, err := o.fragment(); err != nil {
		return err
	} else if ok {
		cfg.Fragments = []config.Fragment{frag}
	}
	if len(cfg.Fragments) == 0 {
		cfg.Fragments = []config.Fragment{{Stdin: true}}
	}

	if o.set["w"] {
		cfg.Window = o.width
	}
	if o.set["s"] {
		cfg.Separator = o.separator
	}
	if o.set["n"] {
		cfg.Newline = o.newline
	}
	if o.set["r"] {
		cfg.Right = true
	}
	if o.set["R"] {
		repeat := false
		cfg.Repeat = &repeat
	}
	if o.set["d"] {
		cfg.Interval = config.Duration(o.interval)
	}
	if o.set["log-level"] {
		cfg.LogLevel = o.logLevel
	}
	if o.set["e"] {
		rules, err := parseReplacements(o.replacements)
		if err != nil {
			return err
		}
		cfg.Replacements = append(cfg.Replacements, rules...)
	}
	return cfg.Validate()
}

// fragment builds the single fragment a source flag asks for.
func (o *cliFlags) fragment() (config.Fragment, bool, error) {
	var frag config.Fragment
	n := 0
	if o.text != "" {
		frag.Text = o.text
		n++
	}
	if o.file != "" {
		frag.File = o.file
		n++
	}
	if o.stdin {
		frag.Stdin = true
		n++
	}
	if o.command != "" {
		frag.Command = strings.Fields(o.command)
		n++
	}
	if o.script != "" {
		frag.Script = o.script
		n++
	}
	if o.mpd || o.mpdAddr != "" || o.mpdFmt != "" {
		frag.MPD = &config.MPD{Addr: o.mpdAddr, Format: o.mpdFmt}
		n++
	}
	if n > 1 {
		return frag, false, config.ErrMultipleSources
	}
	return frag, n == 1, nil
}

// parseReplacements parses "from=to" pairs separated by commas.
func parseReplacements(spec string) ([]config.Replacement, error) {
	var rules []config.Replacement
	for _, pair := range strings.Split(spec, ",") {
		from, to, ok := strings.Cut(pair, "=")
		if !ok || from == "" {
			return nil, fmt.Errorf("bad replacement %q, want from=to", pair)
		}
		rules = append(rules, config.Replacement{From: from, To: to})
	}
	return rules, nil
}
