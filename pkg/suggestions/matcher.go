package suggestions

import "strings"

// matchPrefixLen is how many leading characters of a fragment are used for
// substring matching against source lines. Inherited behavior: short prefixes
// can false-positive on boilerplate lines, so treat this as a tunable, not a
// guaranteed-correct algorithm.
const matchPrefixLen = 10

// MatchLine finds a plausible source line for a text fragment: the first source
// line containing the fragment's leading matchPrefixLen characters. Returns -1
// when the fragment is too short or nothing matches.
func MatchLine(fragment string, sourceLines []string) int {
	fragment = strings.TrimSpace(fragment)
	if len(fragment) < matchPrefixLen {
		return -1
	}
	prefix := fragment[:matchPrefixLen]
	for i, line := range sourceLines {
		if strings.Contains(line, prefix) {
			return i
		}
	}
	return -1
}
