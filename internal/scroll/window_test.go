package scroll

import (
	"errors"
	"testing"
)

func TestNewZeroWidth(t *testing.T) {
	if _, err := New("abc", "|", 0, false, nil); !errors.Is(err, ErrZeroWidth) {
		t.Errorf("expected ErrZeroWidth, got %v", err)
	}
}

func TestNewEmptyContentRepeat(t *testing.T) {
	if _, err := New("", "|", 5, true, nil); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestNewEmptyContentNoRepeat(t *testing.T) {
	w, err := New("", "|", 5, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Fits() {
		t.Error("empty content without repeat should fit statically")
	}
	if got := w.Iter().Next(); got != "" {
		t.Errorf("expected empty frame, got %q", got)
	}
}

func TestNewEmptyPatternRule(t *testing.T) {
	if _, err := New("abc", "|", 5, false, []Rule{{"", "x"}}); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("expected ErrEmptyPattern, got %v", err)
	}
}

func TestNewContentDeletedByRules(t *testing.T) {
	// Rules can empty out a non-empty cycle; there is nothing to repeat.
	if _, err := New("xxx", "", 5, true, []Rule{{"x", ""}}); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}

func TestFitsModeExcludesSeparator(t *testing.T) {
	w, err := New("abc", "|", 10, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !w.Fits() {
		t.Fatal("expected fits mode")
	}
	if w.Text() != "abc" {
		t.Errorf("fits-mode backing text should be bare content, got %q", w.Text())
	}
}

func TestWidthBoundary(t *testing.T) {
	// Width exactly equal to the unit count stays static; one less
	// forces the repeating path.
	exact, err := New("hello", "|", 5, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exact.Fits() {
		t.Error("width == unit count should fit")
	}
	if got := exact.Iter().Next(); got != "hello" {
		t.Errorf("expected full string, got %q", got)
	}

	under, err := New("hello", "|", 4, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if under.Fits() {
		t.Error("width < unit count should repeat")
	}
}

func TestRepeatForcesCycleEvenWhenFitting(t *testing.T) {
	w, err := New("ab", "|", 8, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Fits() {
		t.Error("repeat should force the repeating path")
	}
	if got := w.Iter().Next(); got != "ab|ab|ab" {
		t.Errorf("expected %q, got %q", "ab|ab|ab", got)
	}
}

func TestCycleLenCountsRunsOnce(t *testing.T) {
	w, err := New("?#@!$%^^&*()", "", 12, true, []Rule{{"&", "&amp"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 12 characters, with &amp collapsing to a single logical unit.
	if w.CycleLen() != 12 {
		t.Errorf("expected 12 units per cycle, got %d", w.CycleLen())
	}
}

func TestBackingTextReplication(t *testing.T) {
	w, err := New("abc", "|", 6, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Cycle "abc|" is 4 units; 6-unit windows need 4+6-1 = 9 units of
	// backing: two full copies plus a one-unit tail.
	if w.Text() != "abc|abc|a" {
		t.Errorf("unexpected backing text %q", w.Text())
	}
	if w.CycleText() != "abc|" {
		t.Errorf("unexpected cycle text %q", w.CycleText())
	}
}

func TestBackingTextTailRespectsRuns(t *testing.T) {
	// Cycle: "X<run>Y" where <run> is 5 bytes but one unit. A tail that
	// would split the run must include it whole or not at all.
	w, err := New("X&Y", "", 2, true, []Rule{{"&", "&amp;"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 units per cycle, width 2: one copy plus a 1-unit tail = "X".
	if w.Text() != "X&amp;YX" {
		t.Errorf("unexpected backing text %q", w.Text())
	}
	for off, n := range w.left {
		if off+n > len(w.Text()) {
			t.Errorf("run at %d length %d overruns backing text", off, n)
		}
		if w.Text()[off:off+n] != "&amp;" {
			t.Errorf("run at %d does not cover a replacement: %q", off, w.Text()[off:off+n])
		}
	}
}

func TestUnicodeUnits(t *testing.T) {
	w, err := New("日本語テキスト", "・", 3, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Fits() {
		t.Fatal("7 runes must not fit a 3-unit window")
	}
	if w.CycleLen() != 8 {
		t.Errorf("expected 8 units per cycle, got %d", w.CycleLen())
	}
	it := w.Iter()
	if got := it.Next(); got != "日本語" {
		t.Errorf("expected %q, got %q", "日本語", got)
	}
	if got := it.Next(); got != "本語テ" {
		t.Errorf("expected %q, got %q", "本語テ", got)
	}
}

func TestBoundaryMapsMatchBackingBytes(t *testing.T) {
	w, err := New("a&b\nc", " // ", 4, true, []Rule{NewlineRule(" "), {"&", "&amp;"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for off, n := range w.left {
		if w.right[off+n] != n {
			t.Errorf("left run at %d has no matching right entry", off)
		}
		body := w.Text()[off : off+n]
		if body != "&amp;" && body != " " {
			t.Errorf("run at %d does not cover a replacement: %q", off, body)
		}
	}
}
