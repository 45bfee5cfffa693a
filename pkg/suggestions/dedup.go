package suggestions

// Deduplicate collapses suggestions landing on the same line into a single
// entry, keeping the one with the longest explanation. Ties keep the first
// encountered, so the pass is stable and idempotent.
func Deduplicate(suggs []Suggestion) SuggestionSet {
	set := make(SuggestionSet, len(suggs))
	for _, s := range suggs {
		if existing, ok := set[s.LineIndex]; ok && len(existing.Explanation) >= len(s.Explanation) {
			continue
		}
		set[s.LineIndex] = s
	}
	return set
}
