// Package corpus reads text into sentences of tokens.
package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const maxLine = 1024 * 1024

// ReadLines reads pre-tokenized text: one sentence per line, tokens
// separated by whitespace. Blank lines are skipped.
func ReadLines(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLine), maxLine)

	var sentences [][]string
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) > 0 {
			sentences = append(sentences, words)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read lines")
	}
	return sentences, nil
}

// ReadText reads raw prose, normalizes it, tokenizes it and splits it into
// sentences.
func ReadText(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read text")
	}
	text, err := Normalize(string(raw))
	if err != nil {
		return nil, err
	}
	return SplitSentences(Tokenize(text)), nil
}

// ReadFile opens path and reads it with ReadLines when lines is set, or
// ReadText otherwise.
func ReadFile(path string, lines bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus")
	}
	defer f.Close()

	var sentences [][]string
	if lines {
		sentences, err = ReadLines(f)
	} else {
		sentences, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return sentences, nil
}
