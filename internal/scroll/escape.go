package scroll

import "strings"

// Rule is a literal substring replacement applied while building a
// window's backing text. The bytes a non-empty replacement leaves behind
// become an atomic run: one logical unit that no window may split.
type Rule struct {
	Pattern     string
	Replacement string
}

// NewlineRule expresses newline handling as an ordinary replacement rule.
// An empty replacement deletes newlines outright.
func NewlineRule(replacement string) Rule {
	return Rule{Pattern: "\n", Replacement: replacement}
}

// runBounds maps a byte offset in the backing text to the byte length of
// the atomic run anchored there. The left map keys a run's first byte and
// is consulted when stepping forward; the right map keys one past the
// run's last byte and is consulted when stepping backward.
type runBounds map[int]int

// span is a half-open byte range [start, end) of one atomic run.
type span struct {
	start, end int
}

// applyReplacements applies rules to content in array order and returns
// the transformed text with its boundary maps. Each rule scans the text
// as left by the rules before it, so a later rule may match text an
// earlier replacement introduced; that order dependence is deliberate and
// pinned by tests. A rule never matches its own replacement output: the
// scan resumes after each substitution.
func applyReplacements(content string, rules []Rule) (string, runBounds, runBounds, error) {
	text := content
	var runs []span
	for _, rule := range rules {
		if rule.Pattern == "" {
			return "", nil, nil, ErrEmptyPattern
		}
		text, runs = applyRule(text, runs, rule)
	}

	left := make(runBounds, len(runs))
	right := make(runBounds, len(runs))
	for _, r := range runs {
		left[r.start] = r.end - r.start
		right[r.end] = r.end - r.start
	}
	return text, left, right, nil
}

// applyRule substitutes every non-overlapping occurrence of rule.Pattern
// in text, rebuilding the run list against the new offsets. Existing runs
// that overlap a match are consumed by it: the match's own run (if any)
// replaces them.
func applyRule(text string, runs []span, rule Rule) (string, []span) {
	var b strings.Builder
	var out []span

	next := 0 // index of the first run not yet carried over
	delta := 0
	from := 0
	for {
		i := strings.Index(text[from:], rule.Pattern)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(rule.Pattern)

		// Runs entirely before the match survive, shifted.
		for next < len(runs) && runs[next].end <= start {
			out = append(out, span{runs[next].start + delta, runs[next].end + delta})
			next++
		}
		// Runs overlapping the match are consumed.
		for next < len(runs) && runs[next].start < end {
			next++
		}

		b.WriteString(text[from:start])
		b.WriteString(rule.Replacement)
		if rule.Replacement != "" {
			ns := start + delta
			out = append(out, span{ns, ns + len(rule.Replacement)})
		}
		delta += len(rule.Replacement) - len(rule.Pattern)
		from = end
	}

	for next < len(runs) {
		out = append(out, span{runs[next].start + delta, runs[next].end + delta})
		next++
	}
	b.WriteString(text[from:])
	return b.String(), out
}
