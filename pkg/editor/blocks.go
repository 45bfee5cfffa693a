package editor

import (
	"regexp"
	"strings"
)

// blockScanLimit caps how far a block may extend past its start line when
// neither the brace scan nor the indentation scan finds a boundary.
const blockScanLimit = 20

var (
	// declarationRegex recognizes lines that plausibly open a logical block:
	// function/class/control-keyword openers across common languages, plus
	// export/import statements. No parser, just textual patterns.
	declarationRegex = regexp.MustCompile(`^\s*(export\s+|public\s+|private\s+|protected\s+|static\s+|async\s+)*(func|function|def|fn|class|struct|interface|trait|impl|if|for|while|switch|type|import)\b`)

	// funcAssignRegex catches assignment-to-function-expression forms, e.g.
	// "handler = function(...)" or "const f = (x) => ...".
	funcAssignRegex = regexp.MustCompile(`=\s*(function\b|(async\s*)?\(.*\)\s*=>|\w+\s*=>)`)

	// continuationRegex recognizes lines that continue the previous statement
	// and must not terminate an indentation-based block: else/catch/finally
	// chains, leading operators, leading method chains, leading closing
	// brackets.
	continuationRegex = regexp.MustCompile(`^\s*(else\b|catch\b|finally\b|elif\b|except\b|\.\w|[)\]}]|[+\-*/%&|!?:,=<>])`)
)

// FindBlockBounds locates the logical block around a cursor line using textual
// heuristics: a backward scan for the nearest declaration-like line, then a
// forward scan terminated by brace balance or by indentation. The result is
// intentionally approximate; it is a proposal shown to the user, never applied
// blindly.
func FindBlockBounds(lines []string, cursor int) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(lines) {
		cursor = len(lines) - 1
	}

	start := findBlockStart(lines, cursor)
	end := findBlockEnd(lines, start)
	return start, end
}

// findBlockStart walks upward from the cursor until it hits a declaration-like
// line. A line containing an opening brace without a declaration keeps the walk
// going, so "{" on its own line attaches to the declaration above it.
func findBlockStart(lines []string, cursor int) int {
	for i := cursor; i >= 0; i-- {
		if isDeclarationLine(lines[i]) {
			return i
		}
	}
	return cursor
}

func isDeclarationLine(line string) bool {
	return declarationRegex.MatchString(line) || funcAssignRegex.MatchString(line)
}

// findBlockEnd scans forward from the block start. Brace balance wins when the
// source uses braces; otherwise the block runs through the last line indented
// deeper than the start line, with continuation lines kept. When neither
// condition fires, the range is capped at start+blockScanLimit.
func findBlockEnd(lines []string, start int) int {
	last := len(lines) - 1

	balance := 0
	opened := false
	for i := start; i <= last; i++ {
		for _, ch := range lines[i] {
			switch ch {
			case '{':
				balance++
				opened = true
			case '}':
				balance--
			}
		}
		if opened && balance <= 0 {
			return i
		}
	}

	if !opened {
		baseIndent := indentWidth(lines[start])
		end := start
		for i := start + 1; i <= last; i++ {
			if strings.TrimSpace(lines[i]) == "" {
				continue
			}
			if indentWidth(lines[i]) > baseIndent || isContinuationLine(lines[i]) {
				end = i
				continue
			}
			break
		}
		if end > start {
			return end
		}
	}

	if capped := start + blockScanLimit; capped < last {
		return capped
	}
	return last
}

func isContinuationLine(line string) bool {
	return continuationRegex.MatchString(line)
}

// indentWidth measures leading whitespace, counting tabs as 4 columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}
