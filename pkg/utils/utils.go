package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EstimateTokens provides a rough token estimate for LLM sizing. A common
// heuristic is 4 characters per token for English text.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// IsValidFileExtension checks if the given filename has one of the allowed
// extensions. Extensions should be provided with a leading dot, e.g., ".go".
func IsValidFileExtension(filename string, allowedExtensions []string) bool {
	ext := filepath.Ext(filename)
	for _, allowedExt := range allowedExtensions {
		if strings.EqualFold(ext, allowedExt) {
			return true
		}
	}
	return false
}

// CapitalizeWords capitalizes the first letter of each word in a string.
func CapitalizeWords(s string) string {
	// Using golang.org/x/text/cases for robust capitalization, as strings.Title is deprecated.
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// TruncateString shortens s to at most max characters, appending an ellipsis
// when truncation happened.
func TruncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return fmt.Sprintf("%s...", s[:max-3])
}
