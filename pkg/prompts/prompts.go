package prompts

import (
	"fmt"
	"strings"
)

// Message represents a single message in a chat-like conversation with the LLM.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Level controls how much explanation the tutor asks the model for.
type Level string

const (
	LevelNovice Level = "novice"
	LevelMedium Level = "medium"
	LevelExpert Level = "expert"
)

// ParseLevel validates a user-supplied level string.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelNovice:
		return LevelNovice, nil
	case LevelMedium, "":
		return LevelMedium, nil
	case LevelExpert:
		return LevelExpert, nil
	}
	return "", fmt.Errorf("unknown tutoring level %q (expected novice, medium, or expert)", s)
}

// levelInstructions tunes the depth and tone of the commentary per level.
var levelInstructions = map[Level]string{
	LevelNovice: "The reader is new to programming. Explain each problem in plain language, " +
		"spell out why it matters, and avoid jargon.",
	LevelMedium: "The reader is a working developer. Be direct and practical; focus on " +
		"correctness, clarity, and common pitfalls.",
	LevelExpert: "The reader is a senior engineer. Skip basics entirely; comment only on " +
		"subtle issues, design trade-offs, and performance.",
}

// markerFormatInstructions is the output convention the extraction pipeline
// prefers. Parsing tolerates responses that ignore it.
const markerFormatInstructions = "For each issue, start a new line with exactly:\n" +
	"Line <N>: <short title>\n" +
	"where <N> is the 1-based line number the issue applies to. Follow it with a short " +
	"explanation. When you can propose a concrete one-line fix, add two lines:\n" +
	"Before: `<current code>`\n" +
	"After: `<improved code>`\n" +
	"using single backticks on the same line. Do not wrap the whole answer in a code fence."

// BuildAnalysisMessages constructs the chat messages for a whole-file analysis
// request. When includeLineNumbers is true the code is sent with 1-based line
// prefixes and the model is asked to use the Line N: convention.
func BuildAnalysisMessages(code string, level Level, includeLineNumbers bool) []Message {
	system := "You are an AI coding tutor. Review the user's code and point out concrete, " +
		"actionable improvements. " + levelInstructions[level]
	if includeLineNumbers {
		system += "\n\n" + markerFormatInstructions
	}

	body := code
	if includeLineNumbers {
		body = NumberLines(code)
	}

	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: "Review this code:\n\n" + body},
	}
}

// BuildSnippetMessages constructs the chat messages for a suggestion-at-cursor
// request: a single focused rewrite of one code block.
func BuildSnippetMessages(snippet string, level Level) []Message {
	system := "You are an AI coding tutor. The user selected one block of code and wants a " +
		"single focused improvement. " + levelInstructions[level] + "\n\n" +
		"Respond with exactly one suggestion in this format:\n" +
		"Line 1: <short title>\n" +
		"<explanation>\n" +
		"Before: `<current code>`\n" +
		"After: `<improved code>`"

	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: "Improve this block:\n\n" + snippet},
	}
}

// NumberLines prefixes each line of code with its 1-based line number, the way
// the analysis prompt presents source to the model.
func NumberLines(code string) string {
	lines := strings.Split(code, "\n")
	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(fmt.Sprintf("%d: %s", i+1, line))
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
