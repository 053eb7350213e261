package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreMatcher(t *testing.T) {
	fs := newMockFileSystem()
	fs.addDir("/repo")
	fs.addFile("/repo/.gitignore", 0, "*.log\n!keep.log\nvendor/\n\n# comment\n")

	m, err := NewIgnoreMatcher("/repo", fs)
	require.NoError(t, err)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"debug.log", false, true},
		{"keep.log", false, false},
		{"nested/trace.log", false, true},
		{"vendor", true, true},
		{"vendor", false, false},
		{"main.go", false, false},
		{".", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ShouldIgnore(tt.path, tt.isDir))
		})
	}
}

func TestIgnoreMatcher_NoFile(t *testing.T) {
	fs := newMockFileSystem()
	fs.addDir("/repo")

	m, err := NewIgnoreMatcher("/repo", fs)
	require.NoError(t, err)
	assert.False(t, m.ShouldIgnore("anything.log", false))
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitPath("./a//b/c/"))
	assert.Empty(t, splitPath(""))
}
