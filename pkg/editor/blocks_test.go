package editor

import "testing"

func TestFindBlockBounds_BraceBlock(t *testing.T) {
	lines := []string{
		"package main",
		"",
		"func process() {",
		"\tif ready {",
		"\t\trun()",
		"\t}",
		"}",
		"",
		"func other() {}",
	}

	tests := []struct {
		name               string
		cursor             int
		wantStart, wantEnd int
	}{
		{"cursor on declaration", 2, 2, 6},
		{"cursor inside nested block finds nearest opener", 4, 3, 5},
		{"cursor on single-line func", 8, 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := FindBlockBounds(lines, tt.cursor)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("FindBlockBounds(%d) = (%d, %d), want (%d, %d)",
					tt.cursor, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFindBlockBounds_IndentationBlock(t *testing.T) {
	lines := []string{
		"def process(items):",
		"    total = 0",
		"    for item in items:",
		"        total += item",
		"    return total",
		"",
		"print(process([1]))",
	}

	start, end := FindBlockBounds(lines, 3)
	if start != 2 || end != 3 {
		t.Errorf("inner loop bounds = (%d, %d), want (2, 3)", start, end)
	}

	start, end = FindBlockBounds(lines, 1)
	if start != 0 || end != 4 {
		t.Errorf("function bounds = (%d, %d), want (0, 4)", start, end)
	}
}

func TestFindBlockBounds_ContinuationLines(t *testing.T) {
	lines := []string{
		"result = fetch()",
		"    .map(transform)",
		"    .filter(keep)",
		"done()",
	}

	start, end := FindBlockBounds(lines, 0)
	if start != 0 || end != 2 {
		t.Errorf("chain bounds = (%d, %d), want (0, 2)", start, end)
	}
}

func TestFindBlockBounds_SafetyCap(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "call()"
	}

	start, end := FindBlockBounds(lines, 5)
	if start != 5 || end != 5+blockScanLimit {
		t.Errorf("capped bounds = (%d, %d), want (5, %d)", start, end, 5+blockScanLimit)
	}
}

func TestFindBlockBounds_CursorClampedAndEmpty(t *testing.T) {
	if start, end := FindBlockBounds(nil, 3); start != 0 || end != 0 {
		t.Errorf("empty input bounds = (%d, %d)", start, end)
	}
	lines := []string{"func f() {", "}"}
	if start, end := FindBlockBounds(lines, 99); start != 0 || end != 1 {
		t.Errorf("clamped cursor bounds = (%d, %d), want (0, 1)", start, end)
	}
}
