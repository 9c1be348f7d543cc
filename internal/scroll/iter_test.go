package scroll

import (
	"strings"
	"testing"
)

// collect takes n frames from the iterator in the given direction.
func collect(it *Iter, n int, back bool) []string {
	frames := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if back {
			frames = append(frames, it.NextBack())
		} else {
			frames = append(frames, it.Next())
		}
	}
	return frames
}

func TestStaticFit(t *testing.T) {
	w, err := New("short text", "|", 32, false, []Rule{{"short", "brief"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	for i := 0; i < 5; i++ {
		if got := it.Next(); got != "brief text" {
			t.Fatalf("frame %d: expected %q, got %q", i, "brief text", got)
		}
	}
}

func TestStaticFitIdempotence(t *testing.T) {
	w, err := New("hello", "|", 8, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	first := it.Next()
	if it.Pos() != 0 {
		t.Errorf("fits-mode Pos should stay 0, got %d", it.Pos())
	}
	if back := it.NextBack(); back != first {
		t.Errorf("NextBack should match Next in fits mode: %q vs %q", back, first)
	}
	l, r := it.Range()
	if l != 0 || r != len(w.Text()) {
		t.Errorf("fits-mode range should span the text, got [%d, %d)", l, r)
	}
	if it.Get() != first {
		t.Errorf("Get should return the static frame")
	}
}

func TestFullCycleClosure(t *testing.T) {
	w, err := New("I am a running text", "|", 12, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()

	first := it.Next()
	if first != "I am a runni" {
		t.Fatalf("expected first frame %q, got %q", "I am a runni", first)
	}

	cycle := w.CycleLen()
	for i := 1; i < cycle; i++ {
		it.Next()
	}
	if again := it.Next(); again != first {
		t.Errorf("frame after %d steps should close the cycle: %q vs %q", cycle, again, first)
	}
}

func TestWrapJoinsThroughSeparator(t *testing.T) {
	w, err := New("I am a running text", "|", 12, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	frames := collect(it, w.CycleLen(), false)

	if frames[8] != "unning text|" {
		t.Errorf("expected %q, got %q", "unning text|", frames[8])
	}
	if frames[9] != "nning text|I" {
		t.Errorf("expected wrap through separator, got %q", frames[9])
	}
	for i, f := range frames {
		if n := len([]rune(f)); n != 12 {
			t.Errorf("frame %d has %d units, want 12: %q", i, n, f)
		}
	}
}

func TestBidirectionalSymmetry(t *testing.T) {
	w, err := New("I am a running text", "|", 12, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cycle := w.CycleLen()
	forward := collect(w.Iter(), cycle, false)
	backward := collect(w.IterBack(), cycle, true)

	for i := range forward {
		if forward[i] != backward[cycle-1-i] {
			t.Errorf("frame %d: forward %q != reversed backward %q", i, forward[i], backward[cycle-1-i])
		}
	}
}

func TestBidirectionalSymmetryWithRuns(t *testing.T) {
	w, err := New("a&b&c", "|", 4, true, []Rule{{"&", "&amp;"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cycle := w.CycleLen()
	forward := collect(w.Iter(), cycle, false)
	backward := collect(w.IterBack(), cycle, true)

	for i := range forward {
		if forward[i] != backward[cycle-1-i] {
			t.Errorf("frame %d: forward %q != reversed backward %q", i, forward[i], backward[cycle-1-i])
		}
	}
}

func TestEscapeAtomicity(t *testing.T) {
	w, err := New("?#@!$%^^&*()", "", 12, true, []Rule{{"&", "&amp"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	for i := 0; i < 3*w.CycleLen(); i++ {
		frame := it.Next()
		assertWholeRuns(t, i, frame)
	}
	back := w.IterBack()
	for i := 0; i < 3*w.CycleLen(); i++ {
		assertWholeRuns(t, i, back.NextBack())
	}
}

// assertWholeRuns fails if frame contains any fragment of "&amp" that is
// not a complete occurrence. The surrounding content contributes no 'a',
// 'm' or 'p' of its own.
func assertWholeRuns(t *testing.T, i int, frame string) {
	t.Helper()
	masked := strings.ReplaceAll(frame, "&amp", "....")
	if strings.ContainsAny(masked, "&amp") {
		t.Errorf("frame %d splits a replacement run: %q", i, frame)
	}
}

func TestResumeEquivalence(t *testing.T) {
	const k, n = 7, 30
	w, err := New("abcdef", "|", 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	full := collect(w.Iter(), k+n, false)
	resumed := collect(w.IterAt(k), n, false)
	for i := 0; i < n; i++ {
		if resumed[i] != full[k+i] {
			t.Errorf("frame %d: resumed %q != full %q", i, resumed[i], full[k+i])
		}
	}
}

func TestIterAtWrapsModuloCycle(t *testing.T) {
	w, err := New("abcdef", "|", 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cycle := w.CycleLen()
	base := w.IterAt(2).Next()
	if got := w.IterAt(2 + cycle).Next(); got != base {
		t.Errorf("offset beyond cycle should wrap: %q vs %q", got, base)
	}
	if got := w.IterAt(2 - cycle).Next(); got != base {
		t.Errorf("negative offset should wrap: %q vs %q", got, base)
	}
}

func TestPosTracksNextFrame(t *testing.T) {
	w, err := New("abcdef", "|", 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	for i := 0; i < 2*w.CycleLen(); i++ {
		pos := it.Pos()
		frame := it.Next()
		if want := w.IterAt(pos).Next(); frame != want {
			t.Fatalf("step %d: Pos %d promised %q, Next yielded %q", i, pos, want, frame)
		}
	}
}

func TestRangeAndGetDoNotAdvance(t *testing.T) {
	w, err := New("abcdef", "|", 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	it.Next()

	l1, r1 := it.Range()
	g1 := it.Get()
	l2, r2 := it.Range()
	if l1 != l2 || r1 != r2 || g1 != it.Get() {
		t.Error("Range/Get must not advance the iterator")
	}
	if g1 != w.Text()[l1:r1] {
		t.Errorf("Get should slice the backing text: %q vs %q", g1, w.Text()[l1:r1])
	}
}

func TestWidthOne(t *testing.T) {
	w, err := New("ab", "", 1, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := w.Iter()
	frames := collect(it, 4, false)
	want := []string{"a", "b", "a", "b"}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d: expected %q, got %q", i, want[i], frames[i])
		}
	}
}
