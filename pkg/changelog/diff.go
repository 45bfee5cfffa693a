package changelog

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	RedColor    = "\x1b[31m"
	GreenColor  = "\x1b[32m"
	YellowColor = "\x1b[33m"
	BoldStyle   = "\x1b[1m"
	ResetColor  = "\x1b[0m"
)

// GetDiff renders a colored line diff between two versions of a file, with a
// stats header showing the filename and added/removed line counts.
func GetDiff(filename, originalCode, newCode string) string {
	dmp := diffmatchpatch.New()
	a, b, lineArr := dmp.DiffLinesToChars(originalCode, newCode)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArr)

	var result strings.Builder
	result.WriteString(statsHeader(diffs, filename))

	for _, d := range diffs {
		for _, line := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				result.WriteString(fmt.Sprintf("%s+ %s%s\n", GreenColor, line, ResetColor))
			case diffmatchpatch.DiffDelete:
				result.WriteString(fmt.Sprintf("%s- %s%s\n", RedColor, line, ResetColor))
			default:
				result.WriteString(fmt.Sprintf("  %s\n", line))
			}
		}
	}
	return result.String()
}

// PrintDiff writes the rendered diff to stdout.
func PrintDiff(filename, originalCode, newCode string) {
	diff := GetDiff(filename, originalCode, newCode)
	if diff == "" {
		fmt.Print("No changes detected.")
	}
	fmt.Print(diff)
}

func statsHeader(diffs []diffmatchpatch.Diff, filename string) string {
	additions, deletions := countChangedLines(diffs)
	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s%s%s%s ", BoldStyle, YellowColor, filename, ResetColor))
	if additions > 0 {
		result.WriteString(fmt.Sprintf("%s%s+++%d%s ", BoldStyle, GreenColor, additions, ResetColor))
	}
	if deletions > 0 {
		result.WriteString(fmt.Sprintf("%s%s---%d%s", BoldStyle, RedColor, deletions, ResetColor))
	}
	result.WriteString("\n")
	return result.String()
}

func countChangedLines(diffs []diffmatchpatch.Diff) (additions, deletions int) {
	for _, d := range diffs {
		n := len(splitDiffLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			additions += n
		case diffmatchpatch.DiffDelete:
			deletions += n
		}
	}
	return
}

// splitDiffLines splits a diff chunk into lines, dropping the trailing empty
// element produced by a final newline.
func splitDiffLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
