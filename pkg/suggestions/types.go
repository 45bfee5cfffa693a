package suggestions

import "sort"

// Suggestion is a single line-anchored piece of feedback extracted from a model
// response. LineIndex is 0-based; Diff, when present, is a two-line unified-style
// fragment ("- before\n+ after") or whatever replacement text the model proposed.
// A Suggestion is never mutated after creation; updates replace the value.
type Suggestion struct {
	LineIndex   int    `json:"line"`
	Message     string `json:"message"`
	Explanation string `json:"explanation"`
	Diff        string `json:"diff,omitempty"`
}

// HasDiff reports whether the suggestion carries a concrete code replacement.
func (s Suggestion) HasDiff() bool {
	return s.Diff != ""
}

// SuggestionSet maps a 0-based line index to the single visible suggestion for
// that line. A set is built fresh per analysis response and replaced wholesale,
// never merged, so stale entries cannot survive a new analysis.
type SuggestionSet map[int]Suggestion

// Sorted returns the suggestions ordered by line index, for rendering.
func (set SuggestionSet) Sorted() []Suggestion {
	out := make([]Suggestion, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineIndex < out[j].LineIndex })
	return out
}

// Visible filters the set down to suggestions that still fall inside a document
// of lineCount lines. Out-of-range entries are dropped here, at the presentation
// boundary, because the document may have changed since the analysis ran.
func (set SuggestionSet) Visible(lineCount int) SuggestionSet {
	visible := make(SuggestionSet, len(set))
	for line, s := range set {
		if line >= 0 && line < lineCount {
			visible[line] = s
		}
	}
	return visible
}
