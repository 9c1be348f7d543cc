package mpd

import (
	"errors"
	"strings"
)

// Errors reported by icon set parsing.
var (
	ErrTooFewIcons  = errors.New("not enough icon characters")
	ErrTooManyIcons = errors.New("too many icon characters")
)

// StateIcons maps the three transport states to one rune each. The zero
// value renders nothing.
type StateIcons struct {
	Play  rune
	Pause rune
	Stop  rune
}

// ParseStateIcons parses a three-rune spec in play, pause, stop order.
// An empty spec disables state icons.
func ParseStateIcons(s string) (StateIcons, error) {
	if s == "" {
		return StateIcons{}, nil
	}
	runes := []rune(s)
	if len(runes) < 3 {
		return StateIcons{}, ErrTooFewIcons
	}
	if len(runes) > 3 {
		return StateIcons{}, ErrTooManyIcons
	}
	return StateIcons{Play: runes[0], Pause: runes[1], Stop: runes[2]}, nil
}

// Icon returns the rune for the given state, or zero when disabled.
func (si StateIcons) Icon(state State) rune {
	switch state {
	case StatePlay:
		return si.Play
	case StatePause:
		return si.Pause
	default:
		return si.Stop
	}
}

// FlagIcons renders a boolean player flag: one rune when enabled and an
// optional rune when disabled. The zero value renders nothing.
type FlagIcons struct {
	Enabled  rune
	Disabled rune
}

// ParseFlagIcons parses a one- or two-rune spec: the enabled rune,
// optionally followed by the disabled rune. An empty spec disables the
// flag's icon.
func ParseFlagIcons(s string) (FlagIcons, error) {
	if s == "" {
		return FlagIcons{}, nil
	}
	runes := []rune(s)
	if len(runes) > 2 {
		return FlagIcons{}, ErrTooManyIcons
	}
	fi := FlagIcons{Enabled: runes[0]}
	if len(runes) == 2 {
		fi.Disabled = runes[1]
	}
	return fi, nil
}

// Icon returns the rune for the flag value, or zero when there is
// nothing to render.
func (fi FlagIcons) Icon(on bool) rune {
	if on {
		return fi.Enabled
	}
	return fi.Disabled
}

// write appends the flag's rune, if any.
func (fi FlagIcons) write(b *strings.Builder, on bool) {
	if r := fi.Icon(on); r != 0 {
		b.WriteRune(r)
	}
}

// IconSet bundles every icon family a format can reference.
type IconSet struct {
	State   StateIcons
	Consume FlagIcons
	Random  FlagIcons
	Repeat  FlagIcons
	Single  FlagIcons
}
