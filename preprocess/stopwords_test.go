package preprocess

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testList = `# custom stop words
The
  and  

of
`

func TestLoadStopWords(t *testing.T) {
	s, err := LoadStopWords(strings.NewReader(testList))
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "of", "the"}, s.Words())
	assert.True(t, s.Contains("the"))
	assert.False(t, s.Contains("The"))
	assert.False(t, s.Contains("# custom stop words"))
}

func TestLoadStopWordsYAML(t *testing.T) {
	s, err := LoadStopWordsYAML(strings.NewReader("terms:\n  - The\n  - a\n  - \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "the"}, s.Words())

	s, err = LoadStopWordsYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = LoadStopWordsYAML(strings.NewReader("terms: [unclosed"))
	assert.Error(t, err)
}

func TestLoadStopWordsFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "stop.txt")
	require.NoError(t, os.WriteFile(txt, []byte(testList), 0644))
	s, err := LoadStopWordsFile(txt)
	require.NoError(t, err)
	assert.Len(t, s, 3)

	yml := filepath.Join(dir, "stop.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("terms: [foo, bar]\n"), 0644))
	s, err = LoadStopWordsFile(yml)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "foo"}, s.Words())

	_, err = LoadStopWordsFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestResolveStopWords(t *testing.T) {
	for _, source := range []string{"", "none"} {
		s, err := ResolveStopWords(source)
		require.NoError(t, err)
		assert.Empty(t, s)
	}

	s, err := ResolveStopWords("standard")
	require.NoError(t, err)
	assert.Len(t, s, 179)
	for _, w := range []string{"i", "the", "weren't", "ourselves"} {
		assert.True(t, s.Contains(w), w)
	}
	assert.False(t, s.Contains("cat"))

	_, err = ResolveStopWords(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
