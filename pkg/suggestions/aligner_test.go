package suggestions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign_OneSuggestionPerParagraph(t *testing.T) {
	response := "The loop counter shadows an outer variable.\n\nError returns are ignored in two places.\n\nConsider extracting the retry logic."
	source := make([]string, 30)
	for i := range source {
		source[i] = "x"
	}

	suggs := Align(response, source)
	require.Len(t, suggs, 3)
	for _, s := range suggs {
		assert.GreaterOrEqual(t, s.LineIndex, 0)
		assert.Less(t, s.LineIndex, len(source))
		assert.NotEmpty(t, s.Message)
		assert.Empty(t, s.Diff)
	}
	// No content matches possible, so anchors are proportional: floor(30*i/3).
	assert.Equal(t, 0, suggs[0].LineIndex)
	assert.Equal(t, 10, suggs[1].LineIndex)
	assert.Equal(t, 20, suggs[2].LineIndex)
}

func TestAlign_PrefersContentMatchOverProportional(t *testing.T) {
	source := []string{
		"package main",
		"func process(items []string) {",
		"\tfor i := 0; i < len(items); i++ {",
		"\t}",
		"}",
	}
	response := "Consider using range here.\nfor i := 0; i < len(items); i++ is verbose."

	suggs := Align(response, source)
	require.Len(t, suggs, 1)
	assert.Equal(t, 2, suggs[0].LineIndex, "should anchor to the matching source line")
}

func TestAlign_FiltersBoilerplate(t *testing.T) {
	response := "Here are some suggestions for your code:\n\nThe function is too long.\n\nI hope this helps!"

	suggs := Align(response, []string{"a", "b", "c", "d"})
	require.Len(t, suggs, 1)
	assert.Equal(t, "The function is too long.", suggs[0].Message)
}

func TestAlign_MessageIsFirstLineExplanationIsWholeParagraph(t *testing.T) {
	response := "Validation is missing.\nUser input flows straight into the query.\nAdd a sanitization step."

	suggs := Align(response, []string{"query := input"})
	require.Len(t, suggs, 1)
	assert.Equal(t, "Validation is missing.", suggs[0].Message)
	assert.Equal(t, 3, len(strings.Split(suggs[0].Explanation, "\n")))
}

func TestAlign_EntirelyBoilerplateYieldsNothing(t *testing.T) {
	response := "Sure, happy to take a look.\n\nLet me know if you need anything else."
	assert.Empty(t, Align(response, []string{"code"}))
}

func TestMatchLine(t *testing.T) {
	source := []string{"short", "func process(items []string) {", "return nil"}

	if got := MatchLine("func process(items", source); got != 1 {
		t.Errorf("MatchLine = %d, want 1", got)
	}
	if got := MatchLine("tiny", source); got != -1 {
		t.Errorf("fragments below the prefix length must not match, got %d", got)
	}
	if got := MatchLine("completely unrelated text", source); got != -1 {
		t.Errorf("unmatched fragment should return -1, got %d", got)
	}
	if got := MatchLine("    func process(items", source); got != 1 {
		t.Errorf("indented fragment should match on its trimmed prefix, got %d", got)
	}
}
