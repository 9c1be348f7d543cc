package mpd

import (
	"fmt"

	"github.com/dshills/runtext/internal/source"
)

// DefaultFormat is the running text when no format is configured.
const DefaultFormat = "{artist} - {title}"

// DefaultMissing is the placeholder for values the player cannot supply.
const DefaultMissing = "N/A"

// Config selects what an MPD source renders. Format strings follow
// ParseFormat; icon specs follow ParseStateIcons and ParseFlagIcons.
// Zero values fall back to sensible defaults.
type Config struct {
	Format  string // running text; DefaultFormat when empty
	Prefix  string
	Suffix  string
	Tooltip string

	StateIcons   string
	ConsumeIcons string
	RandomIcons  string
	RepeatIcons  string
	SingleIcons  string

	Missing string // DefaultMissing when empty
}

// Source renders MPD status as marquee content. A poll reports change
// only when the rendered running text, prefix or suffix differs from
// the previous poll, so formats ignoring a moving value (like elapsed
// time) do not force needless window rebuilds.
type Source struct {
	client  *Client
	running *Format
	prefix  *Format
	suffix  *Format
	tooltip *Format
	icons   IconSet
	missing string

	last        source.Content
	lastTooltip string
	primed      bool
}

// NewSource builds an MPD source over an established client.
func NewSource(client *Client, cfg Config) (*Source, error) {
	s := &Source{client: client, missing: cfg.Missing}
	if s.missing == "" {
		s.missing = DefaultMissing
	}

	formatSpec := cfg.Format
	if formatSpec == "" {
		formatSpec = DefaultFormat
	}
	var err error
	if s.running, err = ParseFormat(formatSpec); err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	if s.prefix, err = ParseFormat(cfg.Prefix); err != nil {
		return nil, fmt.Errorf("prefix format: %w", err)
	}
	if s.suffix, err = ParseFormat(cfg.Suffix); err != nil {
		return nil, fmt.Errorf("suffix format: %w", err)
	}
	if s.tooltip, err = ParseFormat(cfg.Tooltip); err != nil {
		return nil, fmt.Errorf("tooltip format: %w", err)
	}

	if s.icons.State, err = ParseStateIcons(cfg.StateIcons); err != nil {
		return nil, fmt.Errorf("state icons: %w", err)
	}
	if s.icons.Consume, err = ParseFlagIcons(cfg.ConsumeIcons); err != nil {
		return nil, fmt.Errorf("consume icons: %w", err)
	}
	if s.icons.Random, err = ParseFlagIcons(cfg.RandomIcons); err != nil {
		return nil, fmt.Errorf("random icons: %w", err)
	}
	if s.icons.Repeat, err = ParseFlagIcons(cfg.RepeatIcons); err != nil {
		return nil, fmt.Errorf("repeat icons: %w", err)
	}
	if s.icons.Single, err = ParseFlagIcons(cfg.SingleIcons); err != nil {
		return nil, fmt.Errorf("single icons: %w", err)
	}
	return s, nil
}

// Initial renders the first content snapshot.
func (s *Source) Initial() (source.Content, error) {
	c, _, err := s.render()
	if err != nil {
		return source.Content{}, err
	}
	s.primed = true
	return c, nil
}

// Poll re-renders and reports whether the content changed.
func (s *Source) Poll() (source.Content, bool, error) {
	c, changed, err := s.render()
	if err != nil {
		return source.Content{}, false, err
	}
	if !s.primed {
		s.primed = true
		return c, true, nil
	}
	return c, changed, nil
}

// Tooltip returns the tooltip text rendered by the latest poll.
func (s *Source) Tooltip() string {
	return s.lastTooltip
}

func (s *Source) render() (source.Content, bool, error) {
	song, err := s.client.CurrentSong()
	if err != nil {
		return source.Content{}, false, err
	}
	st, err := s.client.Status()
	if err != nil {
		return source.Content{}, false, err
	}

	c := source.Content{
		Running: s.running.Render(song, st, s.icons, s.missing),
		Prefix:  s.prefix.Render(song, st, s.icons, s.missing),
		Suffix:  s.suffix.Render(song, st, s.icons, s.missing),
	}
	s.lastTooltip = s.tooltip.Render(song, st, s.icons, s.missing)
	changed := c != s.last
	s.last = c
	return c, changed, nil
}
