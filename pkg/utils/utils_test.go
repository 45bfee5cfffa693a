package utils

import "testing"

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"novice", "Novice"},
		{"expert review", "Expert Review"},
		{"already Capitalized", "Already Capitalized"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CapitalizeWords(tt.in); got != tt.want {
			t.Errorf("CapitalizeWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer message entirely", 10, "a longe..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestIsValidFileExtension(t *testing.T) {
	allowed := []string{".go", ".py"}
	if !IsValidFileExtension("main.go", allowed) {
		t.Error("main.go should be allowed")
	}
	if !IsValidFileExtension("MAIN.GO", allowed) {
		t.Error("extension matching should be case-insensitive")
	}
	if IsValidFileExtension("notes.txt", allowed) {
		t.Error("notes.txt should not be allowed")
	}
}
