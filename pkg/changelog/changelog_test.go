package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLoadRevert(t *testing.T) {
	t.Chdir(t.TempDir())

	target := filepath.Join(".", "main.go")
	original := "package main\n\nfunc main() { old() }\n"
	updated := "package main\n\nfunc main() { renamed() }\n"
	require.NoError(t, os.WriteFile(target, []byte(updated), 0644))

	id, err := RecordChange(target, "Use a clearer name", 2, original, updated)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	changes, err := LoadChanges()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, StatusActive, changes[0].Status)
	assert.Equal(t, target, changes[0].Filename)

	require.NoError(t, RevertChange(id))

	restored, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, original, string(restored))

	changes, err = LoadChanges()
	require.NoError(t, err)
	assert.Equal(t, StatusReverted, changes[0].Status)

	// A reverted change cannot be reverted again.
	assert.Error(t, RevertChange(id))
}

func TestLoadChanges_NewestFirst(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := RecordChange("a.go", "first", 0, "a", "b")
	require.NoError(t, err)
	_, err = RecordChange("b.go", "second", 0, "a", "b")
	require.NoError(t, err)

	changes, err := LoadChanges()
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, "b.go", changes[0].Filename)
}

func TestRevertChange_UnknownRevision(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Error(t, RevertChange("does-not-exist"))
}

func TestGetDiff(t *testing.T) {
	diff := GetDiff("sample.go", "a\nb\nc\n", "a\nB\nc\n")

	assert.True(t, strings.Contains(diff, "sample.go"))
	assert.True(t, strings.Contains(diff, "- b"))
	assert.True(t, strings.Contains(diff, "+ B"))
	assert.True(t, strings.Contains(diff, "+++1"))
	assert.True(t, strings.Contains(diff, "---1"))
}
