package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/runtext/internal/config"
)

func textConfig(width int, texts ...string) config.Config {
	cfg := config.Default()
	cfg.Window = width
	cfg.Separator = "|"
	for _, text := range texts {
		cfg.Fragments = append(cfg.Fragments, config.Fragment{Text: text})
	}
	return cfg
}

func TestLineConcatenatesFragments(t *testing.T) {
	a, err := New(textConfig(2, "abc", "xyz"), NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	want := []string{"abxy", "bcyz", "c|z|", "|a|x"}
	for i, w := range want {
		if got := a.Line(); got != w {
			t.Errorf("line %d: got %q, want %q", i, got, w)
		}
	}
}

func TestNewNoFragments(t *testing.T) {
	if _, err := New(config.Default(), NullLogger); !errors.Is(err, ErrNoFragments) {
		t.Errorf("expected ErrNoFragments, got %v", err)
	}
}

func TestNewAppliesReplacements(t *testing.T) {
	cfg := textConfig(12, "I am a running text")
	cfg.Window = 12
	cfg.Replacements = []config.Replacement{{From: "running", To: "sprinting"}}
	a, err := New(cfg, NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	// The replacement is atomic, so 12 logical units reach past it.
	if got := a.Line(); got != "I am a sprinting tex" {
		t.Errorf("got %q, want %q", got, "I am a sprinting tex")
	}
}

func TestNewReplacesNewlines(t *testing.T) {
	cfg := textConfig(10, "one\ntwo")
	cfg.Newline = " / "
	a, err := New(cfg, NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if got := a.Line(); !strings.HasPrefix(got, "one / two") {
		t.Errorf("newline not replaced: %q", got)
	}
}

func TestOncePersistsPosition(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state")

	run := func(text string) string {
		t.Helper()
		a, err := New(textConfig(2, text), NullLogger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer a.Close()
		var buf strings.Builder
		if err := a.Once(statePath, &buf); err != nil {
			t.Fatalf("once failed: %v", err)
		}
		return strings.TrimSuffix(buf.String(), "\n")
	}

	if got := run("abc"); got != "ab" {
		t.Errorf("first run: got %q, want %q", got, "ab")
	}
	if got := run("abc"); got != "bc" {
		t.Errorf("second run: got %q, want %q", got, "bc")
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatalf("reading state: %v", err)
	}
	if string(data) != "2 abc|\n" {
		t.Errorf("state file: got %q, want %q", string(data), "2 abc|\n")
	}

	// New content invalidates the stored position.
	if got := run("xyz"); got != "xy" {
		t.Errorf("after change: got %q, want %q", got, "xy")
	}
}

func TestOnceIgnoresBadState(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state")
	if err := os.WriteFile(statePath, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := New(textConfig(2, "abc"), NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	var buf strings.Builder
	if err := a.Once(statePath, &buf); err != nil {
		t.Fatalf("once failed: %v", err)
	}
	if got := strings.TrimSuffix(buf.String(), "\n"); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestOnceWithoutState(t *testing.T) {
	a, err := New(textConfig(2, "abc"), NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	var buf strings.Builder
	if err := a.Once("", &buf); err != nil {
		t.Fatalf("once failed: %v", err)
	}
	if buf.String() != "ab\n" {
		t.Errorf("got %q, want %q", buf.String(), "ab\n")
	}
}

func TestOnceRejectsMultipleFragments(t *testing.T) {
	a, err := New(textConfig(2, "abc", "xyz"), NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	var buf strings.Builder
	if err := a.Once("", &buf); !errors.Is(err, ErrOnceFragments) {
		t.Errorf("expected ErrOnceFragments, got %v", err)
	}
}

func TestRunTerminalStopsOnContext(t *testing.T) {
	cfg := textConfig(2, "abc")
	cfg.Interval = config.Duration(time.Millisecond)
	a, err := New(cfg, NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var buf strings.Builder
	if err := a.RunTerminal(ctx, &buf, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several frames, got %q", buf.String())
	}
	if lines[0] != "ab" || lines[1] != "bc" {
		t.Errorf("unexpected frames: %v", lines[:2])
	}
}

func TestRunWaybarEmitsJSON(t *testing.T) {
	cfg := textConfig(2, "abc")
	cfg.Interval = config.Duration(time.Millisecond)
	a, err := New(cfg, NullLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var buf strings.Builder
	if err := a.RunWaybar(ctx, &buf, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), `{"text":"ab"}`) {
		t.Errorf("unexpected first frame: %q", buf.String())
	}
}
