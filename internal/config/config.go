package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Configuration errors.
var (
	ErrMultipleSources = errors.New("fragment defines more than one source")
	ErrNoSource        = errors.New("fragment defines no source")
	ErrBadWindow       = errors.New("window must not be negative")
)

// Duration is a time.Duration that unmarshals from TOML strings like
// "500ms" or "2s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Replacement is one literal substitution rule. Rules apply in the
// order they appear in the file.
type Replacement struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// MPD configures a music player daemon source.
type MPD struct {
	Addr          string `toml:"addr"`
	Format        string `toml:"format"`
	PrefixFormat  string `toml:"prefix_format"`
	SuffixFormat  string `toml:"suffix_format"`
	TooltipFormat string `toml:"tooltip_format"`
	StateIcons    string `toml:"state_icons"`
	ConsumeIcons  string `toml:"consume_icons"`
	RandomIcons   string `toml:"random_icons"`
	RepeatIcons   string `toml:"repeat_icons"`
	SingleIcons   string `toml:"single_icons"`
	Missing       string `toml:"missing"`
}

// Fragment is one piece of the output line. Exactly one of Text, File,
// Stdin, Command, Script and MPD picks its source; Prefix and Suffix
// wrap its scrolled window without scrolling themselves.
type Fragment struct {
	Text    string   `toml:"text"`
	File    string   `toml:"file"`
	Stdin   bool     `toml:"stdin"`
	Command []string `toml:"command"`
	Script  string   `toml:"script"`
	MPD     *MPD     `toml:"mpd"`

	Prefix  string `toml:"prefix"`
	Suffix  string `toml:"suffix"`
	Tooltip string `toml:"tooltip"`

	// Zero Window means inherit the global setting; nil Separator and
	// Right likewise.
	Window    int     `toml:"window"`
	Separator *string `toml:"separator"`
	Right     *bool   `toml:"right"`
}

// Config is the full configuration file.
type Config struct {
	Window    int      `toml:"window"`
	Separator string   `toml:"separator"`
	Newline   string   `toml:"newline"`
	Repeat    *bool    `toml:"repeat"`
	Right     bool     `toml:"right"`
	Interval  Duration `toml:"interval"`
	LogLevel  string   `toml:"log_level"`

	MPDTimeout Duration `toml:"mpd_timeout"`

	Replacements []Replacement `toml:"replacement"`
	Fragments    []Fragment    `toml:"fragment"`
}

// FallbackWindow is the width used when no flag or file sets one and
// the terminal width cannot be read.
const FallbackWindow = 30

// Default returns the configuration used when no file exists. A zero
// Window means the caller should size to the terminal.
func Default() Config {
	return Config{
		Separator: "|",
		Newline:   " ",
		Interval:  Duration(time.Second),
		LogLevel:  "info",
	}
}

// DefaultPath returns the conventional config file location, or "" when
// the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "runtext", "config.toml")
}

// Load reads the configuration at path. A missing file is not an error;
// the defaults come back unchanged so the CLI works without any file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML configuration data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings the decoder cannot.
func (c *Config) Validate() error {
	if c.Window < 0 {
		return ErrBadWindow
	}
	for i := range c.Fragments {
		f := &c.Fragments[i]
		if f.Window < 0 {
			return fmt.Errorf("fragment %d: %w", i, ErrBadWindow)
		}
		n := 0
		if f.Text != "" {
			n++
		}
		if f.File != "" {
			n++
		}
		if f.Stdin {
			n++
		}
		if len(f.Command) > 0 {
			n++
		}
		if f.Script != "" {
			n++
		}
		if f.MPD != nil {
			n++
		}
		if n > 1 {
			return fmt.Errorf("fragment %d: %w", i, ErrMultipleSources)
		}
		if n == 0 {
			return fmt.Errorf("fragment %d: %w", i, ErrNoSource)
		}
	}
	return nil
}

// RepeatOrDefault resolves the optional repeat flag; scrolling repeats
// unless the file says otherwise.
func (c *Config) RepeatOrDefault() bool {
	if c.Repeat == nil {
		return true
	}
	return *c.Repeat
}
