package editor

import (
	"fmt"
	"os"
	"strings"
)

// Buffer is a line-oriented, 0-indexed view of a document. Parsing never
// touches it; all mutation goes through ReplaceRange so edits stay atomic at
// line granularity and a snapshot can always be restored byte-for-byte.
type Buffer struct {
	path  string
	lines []string
}

// NewBuffer creates a buffer from document content.
func NewBuffer(content string) *Buffer {
	return &Buffer{lines: strings.Split(content, "\n")}
}

// LoadBuffer reads a file into a buffer, remembering the path for Save.
func LoadBuffer(path string) (*Buffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	b := NewBuffer(string(content))
	b.path = path
	return b, nil
}

// Path returns the file path the buffer was loaded from, if any.
func (b *Buffer) Path() string {
	return b.path
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at index i. The bool is false when i is out of range.
func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Range returns a copy of the inclusive line range [start, end], clamped to the
// buffer bounds.
func (b *Buffer) Range(start, end int) []string {
	start, end = b.clampRange(start, end)
	out := make([]string, end-start+1)
	copy(out, b.lines[start:end+1])
	return out
}

// ReplaceRange atomically replaces the inclusive line range [start, end] with
// the replacement lines. The range is clamped to the buffer bounds.
func (b *Buffer) ReplaceRange(start, end int, replacement []string) {
	start, end = b.clampRange(start, end)
	updated := make([]string, 0, len(b.lines)-(end-start+1)+len(replacement))
	updated = append(updated, b.lines[:start]...)
	updated = append(updated, replacement...)
	updated = append(updated, b.lines[end+1:]...)
	b.lines = updated
}

// String reassembles the buffer into document content.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Save writes the buffer back to the file it was loaded from.
func (b *Buffer) Save() error {
	if b.path == "" {
		return fmt.Errorf("buffer has no backing file")
	}
	if err := os.WriteFile(b.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.path, err)
	}
	return nil
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end >= len(b.lines) {
		end = len(b.lines) - 1
	}
	if end < start {
		end = start
	}
	return start, end
}

// ClampLine clamps a line index into the buffer's valid range.
func (b *Buffer) ClampLine(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(b.lines) {
		return len(b.lines) - 1
	}
	return i
}
