package suggestions

import "strings"

// boilerplatePrefixes marks paragraphs that are introductions or sign-offs
// rather than feedback. Best-effort filter, matched case-insensitively against
// the start of a paragraph.
var boilerplatePrefixes = []string{
	"here are",
	"here is",
	"here's",
	"sure,",
	"sure!",
	"of course",
	"overall",
	"in summary",
	"in general",
	"to summarize",
	"i hope",
	"let me know",
	"feel free",
	"great question",
	"happy to help",
}

// Align anchors an unstructured response to source lines when the marker-based
// path found nothing. Each non-boilerplate paragraph becomes one suggestion:
// content-matched to a source line where possible, otherwise distributed
// proportionally across the file so no feedback is silently dropped.
func Align(response string, sourceLines []string) []Suggestion {
	paragraphs := splitParagraphs(response)

	var kept [][]string
	for _, p := range paragraphs {
		if isBoilerplate(p) {
			continue
		}
		kept = append(kept, p)
	}

	total := len(kept)
	var out []Suggestion
	for i, paragraph := range kept {
		line := anchorParagraph(paragraph, sourceLines)
		if line < 0 {
			line = proportionalLine(i, total, len(sourceLines))
		}
		out = append(out, Suggestion{
			LineIndex:   line,
			Message:     strings.TrimSpace(paragraph[0]),
			Explanation: strings.TrimSpace(strings.Join(paragraph, "\n")),
		})
	}
	return out
}

// splitParagraphs breaks a response into paragraphs on blank-line boundaries.
func splitParagraphs(response string) [][]string {
	var paragraphs [][]string
	var current []string
	for _, line := range strings.Split(response, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}

func isBoilerplate(paragraph []string) bool {
	if len(paragraph) == 0 {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(paragraph[0]))
	for _, prefix := range boilerplatePrefixes {
		if strings.HasPrefix(head, prefix) {
			return true
		}
	}
	return false
}

// anchorParagraph tries a content match for each line of the paragraph and
// returns the first hit, or -1 when nothing matched.
func anchorParagraph(paragraph []string, sourceLines []string) int {
	for _, line := range paragraph {
		if idx := MatchLine(line, sourceLines); idx >= 0 {
			return idx
		}
	}
	return -1
}

// proportionalLine spreads paragraph i of total across lineCount source lines.
func proportionalLine(i, total, lineCount int) int {
	if total <= 0 || lineCount <= 0 {
		return 0
	}
	line := lineCount * i / total
	if line >= lineCount {
		line = lineCount - 1
	}
	return line
}
