package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	in := "the cat sat\n\n   \nthe  dog\tran\n"
	got, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"the", "cat", "sat"},
		{"the", "dog", "ran"},
	}, got)
}

func TestReadText(t *testing.T) {
	in := "The cat sat. The dog\nran!\nWhy?"
	got, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"The", "cat", "sat", "."},
		{"The", "dog", "ran", "!"},
		{"Why", "?"},
	}, got)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("a b. c\n"), 0644))

	text, err := ReadFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "."}, {"c"}}, text)

	lines, err := ReadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b.", "c"}}, lines)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"), true)
	assert.Error(t, err)
}
