package preprocess

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StopWords is a set of lowercase words removed before counting.
type StopWords map[string]struct{}

// NewStopWords builds a set from words, trimmed and lowercased.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s.add(w)
	}
	return s
}

func (s StopWords) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		s[w] = struct{}{}
	}
}

// Contains reports whether w is a stop word. A nil set contains nothing.
func (s StopWords) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Words returns the set's words, sorted.
func (s StopWords) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// LoadStopWords reads one stop word per line. Blank lines and lines
// starting with # are skipped.
func LoadStopWords(r io.Reader) (StopWords, error) {
	s := make(StopWords)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read stop words")
	}
	return s, nil
}

// LoadStopWordsYAML reads a YAML document with a top-level terms list:
//
//	terms:
//	  - the
//	  - a
func LoadStopWordsYAML(r io.Reader) (StopWords, error) {
	var doc struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse stop word yaml")
	}
	return NewStopWords(doc.Terms...), nil
}

// LoadStopWordsFile opens path and reads it as YAML when it ends in .yaml or
// .yml, and as a word-per-line list otherwise.
func LoadStopWordsFile(path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open stop words")
	}
	defer f.Close()

	var s StopWords
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = LoadStopWordsYAML(f)
	default:
		s, err = LoadStopWords(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// ResolveStopWords maps a stop word option to a set: "" and "none" give no
// stop words, "standard" gives StandardStopWords, anything else is a file path.
func ResolveStopWords(source string) (StopWords, error) {
	switch source {
	case "", "none":
		return nil, nil
	case "standard":
		return StandardStopWords(), nil
	}
	return LoadStopWordsFile(source)
}

// StandardStopWords returns the English stop word list used by NLTK.
func StandardStopWords() StopWords {
	return NewStopWords(english...)
}

var english = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
	"herself", "it", "it's", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "this", "that",
	"that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did",
	"doing", "a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over",
	"under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't",
	"mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't",
}
