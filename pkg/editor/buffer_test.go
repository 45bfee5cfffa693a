package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuffer_ReplaceRange(t *testing.T) {
	tests := []struct {
		name        string
		start, end  int
		replacement []string
		want        string
	}{
		{"middle", 1, 2, []string{"X"}, "a\nX\nd"},
		{"grow", 1, 1, []string{"X", "Y"}, "a\nX\nY\nc\nd"},
		{"start clamped", -5, 0, []string{"X"}, "X\nb\nc\nd"},
		{"end clamped", 2, 99, []string{"X"}, "a\nb\nX"},
		{"whole buffer", 0, 3, []string{"only"}, "only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer("a\nb\nc\nd")
			b.ReplaceRange(tt.start, tt.end, tt.replacement)
			if got := b.String(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuffer_RangeReturnsCopy(t *testing.T) {
	b := NewBuffer("a\nb\nc")
	r := b.Range(0, 1)
	r[0] = "mutated"
	if line, _ := b.Line(0); line != "a" {
		t.Fatalf("Range must not alias buffer storage, line 0 = %q", line)
	}
}

func TestBuffer_LineBounds(t *testing.T) {
	b := NewBuffer("only")
	if _, ok := b.Line(1); ok {
		t.Error("expected out-of-range read to fail")
	}
	if got := b.ClampLine(99); got != 0 {
		t.Errorf("ClampLine(99) = %d, want 0", got)
	}
	if got := b.ClampLine(-1); got != 0 {
		t.Errorf("ClampLine(-1) = %d, want 0", got)
	}
}

func TestBuffer_LoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	content := "package main\n\nfunc main() {}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBuffer(path)
	if err != nil {
		t.Fatalf("LoadBuffer: %v", err)
	}
	if b.String() != content {
		t.Fatalf("loaded content mismatch: %q", b.String())
	}

	b.ReplaceRange(2, 2, []string{"func main() { run() }"})
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	saved, _ := os.ReadFile(path)
	if string(saved) != b.String() {
		t.Fatalf("saved content mismatch: %q", string(saved))
	}
}
