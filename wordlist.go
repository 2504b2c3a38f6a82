package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyWordList is returned when a word list source has no words.
var ErrEmptyWordList = errors.New("word list contains no words")

// normalizeWord trims surrounding whitespace and lowercases, the case
// convention shared by generation and solving.
func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LoadWordList reads a line-delimited word list from a text file.
// Words keep their source order; blank lines are skipped; duplicates
// are kept and handled independently.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	return readWordList(f)
}

func readWordList(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	var words []string
	for sc.Scan() {
		w := normalizeWord(sc.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	return words, nil
}
