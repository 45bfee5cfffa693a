package suggestions

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// beforeRegex and afterRegex match the optional inline code pair the model is
	// asked to emit, e.g. "Before: `x = 1`" / "After: `count = 1`". Labels are
	// case-sensitive; the code sits between single backticks on the same line.
	beforeRegex = regexp.MustCompile("^\\s*Before:\\s*`([^`]*)`")
	afterRegex  = regexp.MustCompile("^\\s*After:\\s*`([^`]*)`")
)

// Extract parses a raw model response into line-anchored suggestions, in span
// order. Spans whose marker number cannot be parsed are discarded without
// aborting the batch. An empty result from a non-empty response means the
// response carried no markers and the caller should fall back to Align.
func Extract(response string) []Suggestion {
	var out []Suggestion
	for _, span := range Segment(response) {
		if s, ok := extractSpan(span); ok {
			out = append(out, s)
		}
	}
	return out
}

// extractSpan turns one segmented span into a Suggestion. The bool result is
// false when the marker number is unusable as a 1-based line reference.
func extractSpan(span Span) (Suggestion, bool) {
	n, err := strconv.Atoi(span.RawNumber)
	if err != nil || n < 1 {
		return Suggestion{}, false
	}

	s := Suggestion{
		LineIndex: n - 1,
		Message:   strings.TrimSpace(span.Title),
	}

	// The first line of the span is the marker itself; everything after it is
	// explanation, minus any Before/After pair which becomes the diff.
	lines := strings.Split(span.Text, "\n")
	var before, after string
	var haveBefore, haveAfter bool
	var rest []string

	for _, line := range lines[1:] {
		if !haveBefore {
			if m := beforeRegex.FindStringSubmatch(line); m != nil {
				before, haveBefore = m[1], true
				continue
			}
		}
		if !haveAfter {
			if m := afterRegex.FindStringSubmatch(line); m != nil {
				after, haveAfter = m[1], true
				continue
			}
		}
		rest = append(rest, line)
	}

	if haveBefore && haveAfter {
		s.Diff = "- " + before + "\n+ " + after
	} else if haveBefore || haveAfter {
		// An unpaired Before/After is not a diff; keep it as explanation text.
		rest = lines[1:]
	}

	s.Explanation = strings.TrimSpace(strings.Join(rest, "\n"))
	return s, true
}
