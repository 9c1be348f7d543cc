package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/dshills/runtext/internal/config"
	"github.com/dshills/runtext/internal/render"
	"github.com/dshills/runtext/internal/scroll"
	"github.com/dshills/runtext/internal/source"
	"github.com/dshills/runtext/internal/source/mpd"
	"github.com/dshills/runtext/internal/waybar"
)

// App owns the fragments that make up the output line and drives them
// through one of the output modes.
type App struct {
	log       *Logger
	fragments []*Fragment
	registry  *mpd.Registry
	interval  time.Duration
}

// New builds the application from resolved configuration. Sources are
// opened eagerly so a bad fragment fails at startup, not mid-scroll.
func New(cfg config.Config, log *Logger) (*App, error) {
	if log == nil {
		log = NullLogger
	}
	if len(cfg.Fragments) == 0 {
		return nil, ErrNoFragments
	}

	interval := cfg.Interval.Std()
	if interval <= 0 {
		interval = time.Second
	}
	a := &App{
		log:      log,
		registry: mpd.NewRegistry(cfg.MPDTimeout.Std()),
		interval: interval,
	}

	rules := buildRules(cfg)
	for i, fc := range cfg.Fragments {
		src, err := a.buildSource(fc)
		if err != nil {
			a.Close()
			return nil, WrapError(err, "fragment %d", i)
		}
		opts := FragmentOptions{
			Width:     fc.Window,
			Separator: cfg.Separator,
			Repeat:    cfg.RepeatOrDefault(),
			Right:     cfg.Right,
			Rules:     rules,
			Prefix:    fc.Prefix,
			Suffix:    fc.Suffix,
			Tooltip:   fc.Tooltip,
		}
		if opts.Width == 0 {
			opts.Width = cfg.Window
		}
		if fc.Separator != nil {
			opts.Separator = *fc.Separator
		}
		if fc.Right != nil {
			opts.Right = *fc.Right
		}
		f, err := NewFragment(src, opts)
		if err != nil {
			a.Close()
			return nil, WrapError(err, "fragment %d", i)
		}
		a.fragments = append(a.fragments, f)
	}
	return a, nil
}

// buildRules turns newline handling and the replacement list into one
// ordered rule slice. Newlines go first so later rules see the joined
// text.
func buildRules(cfg config.Config) []scroll.Rule {
	rules := make([]scroll.Rule, 0, len(cfg.Replacements)+1)
	rules = append(rules, scroll.NewlineRule(cfg.Newline))
	for _, r := range cfg.Replacements {
		rules = append(rules, scroll.Rule{Pattern: r.From, Replacement: r.To})
	}
	return rules
}

func (a *App) buildSource(fc config.Fragment) (source.Source, error) {
	switch {
	case fc.Text != "":
		return source.NewString(fc.Text), nil
	case fc.File != "":
		return source.NewFile(fc.File)
	case fc.Stdin:
		return source.NewStdin()
	case len(fc.Command) > 0:
		return source.NewCommand(fc.Command)
	case fc.Script != "":
		return source.NewScript(fc.Script)
	case fc.MPD != nil:
		client, err := a.registry.Client(fc.MPD.Addr)
		if err != nil {
			return nil, err
		}
		return mpd.NewSource(client, mpd.Config{
			Format:       fc.MPD.Format,
			Prefix:       fc.MPD.PrefixFormat,
			Suffix:       fc.MPD.SuffixFormat,
			Tooltip:      fc.MPD.TooltipFormat,
			StateIcons:   fc.MPD.StateIcons,
			ConsumeIcons: fc.MPD.ConsumeIcons,
			RandomIcons:  fc.MPD.RandomIcons,
			RepeatIcons:  fc.MPD.RepeatIcons,
			SingleIcons:  fc.MPD.SingleIcons,
			Missing:      fc.MPD.Missing,
		})
	default:
		return nil, config.ErrNoSource
	}
}

// Line ticks every fragment once and concatenates the frames. A
// fragment whose poll fails keeps scrolling its last good content.
func (a *App) Line() string {
	var b strings.Builder
	for i, f := range a.fragments {
		frame, err := f.Tick()
		if err != nil {
			a.log.WithComponent("fragment").Error("fragment %d: %v", i, err)
			frame = f.Step()
		}
		b.WriteString(frame)
	}
	return b.String()
}

// Tooltip joins the tooltips of every fragment that renders one.
func (a *App) Tooltip() string {
	var parts []string
	for _, f := range a.fragments {
		if t := f.Tooltip(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// RunTerminal scrolls to w until the context ends. In place mode the
// line redraws over itself; otherwise each frame gets its own line.
func (a *App) RunTerminal(ctx context.Context, w io.Writer, inPlace bool) error {
	lw := render.NewLineWriter(w, inPlace)
	if err := lw.Write(a.Line()); err != nil {
		return err
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return lw.Finish()
		case <-ticker.C:
			if err := lw.Write(a.Line()); err != nil {
				return err
			}
		}
	}
}

// RunWaybar streams JSON frames to w until the context ends.
func (a *App) RunWaybar(ctx context.Context, w io.Writer, tooltip bool) error {
	ww := waybar.NewWriter(w)
	emit := func() error {
		f := waybar.Frame{Text: a.Line()}
		if tooltip {
			f.Tooltip = a.Tooltip()
		}
		return ww.Write(f)
	}
	if err := emit(); err != nil {
		return err
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := emit(); err != nil {
				return err
			}
		}
	}
}

// RunScreen scrolls in a dedicated full-screen terminal session until
// the user quits or the context ends.
func (a *App) RunScreen(ctx context.Context) error {
	screen, err := render.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.Draw(a.Line())
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-screen.Quit():
			return nil
		case <-ticker.C:
			screen.Draw(a.Line())
		}
	}
}

// Once prints a single frame and records where the scroll stopped, so
// the next invocation carries on from there. The persisted position is
// honored only while the cycle text is unchanged; new content restarts
// the scroll.
func (a *App) Once(statePath string, w io.Writer) error {
	if len(a.fragments) != 1 {
		return ErrOnceFragments
	}
	f := a.fragments[0]

	if statePath != "" {
		pos, cycle, err := loadState(statePath)
		switch {
		case err == nil && cycle == f.CycleText():
			f.Seek(pos)
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			a.log.Warn("ignoring state file %s: %v", statePath, err)
		}
	}

	if _, err := fmt.Fprintln(w, f.Step()); err != nil {
		return WrapError(err, "writing frame")
	}
	if statePath != "" {
		return saveState(statePath, f.Pos(), f.CycleText())
	}
	return nil
}

// Close releases every fragment and MPD connection.
func (a *App) Close() {
	for _, f := range a.fragments {
		f.Close()
	}
	if err := a.registry.Close(); err != nil {
		a.log.WithComponent("mpd").Error("closing connections: %v", err)
	}
}
