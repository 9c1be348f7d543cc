package waybar

import (
	"strings"
	"testing"
)

func TestWriteFrame(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	if err := w.Write(Frame{Text: "hello", Tooltip: "full text"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"text":"hello","tooltip":"full text"}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteFrameNoTooltip(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	if err := w.Write(Frame{Text: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"text":"hello"}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteFrameRawRunes(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	if err := w.Write(Frame{Text: "▶ <b>now</b>"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"text":"▶ <b>now</b>"}` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteSequence(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	for _, text := range []string{"abc", "bca", "cab"} {
		if err := w.Write(Frame{Text: text}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
}
