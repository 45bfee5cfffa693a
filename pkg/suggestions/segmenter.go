package suggestions

import (
	"regexp"
	"strings"
)

// markerRegex matches a suggestion marker line, e.g. "Line 12: Use better names".
// The keyword is case-sensitive and the number is 1-based, as written by the model.
var markerRegex = regexp.MustCompile(`^Line (\d+):(.*)$`)

// Span is the text belonging to one detected suggestion: its marker line through
// to the start of the next marker (or the end of the response).
type Span struct {
	RawNumber string // digits from the marker, unparsed
	Title     string // remainder of the marker line after the colon
	Text      string // full span text, marker line included
}

// isMarkerLine checks whether a line starts a new suggestion span.
func isMarkerLine(line string) (rawNumber, title string, ok bool) {
	matches := markerRegex.FindStringSubmatch(line)
	if len(matches) == 0 {
		return "", "", false
	}
	return matches[1], matches[2], true
}

// Segment splits a raw model response into ordered spans, one per marker line.
// Zero markers yields an empty result; that is not an error but the signal for
// the paragraph-alignment fallback.
func Segment(response string) []Span {
	lines := strings.Split(response, "\n")

	var spans []Span
	var current *Span
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.Join(body, "\n")
		spans = append(spans, *current)
		current = nil
		body = nil
	}

	for _, line := range lines {
		if rawNumber, title, ok := isMarkerLine(line); ok {
			flush()
			current = &Span{RawNumber: rawNumber, Title: title}
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return spans
}
