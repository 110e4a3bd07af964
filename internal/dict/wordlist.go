package dict

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"strings"
)

//go:embed words_en.txt
var embeddedWords []byte

// WordList is an offline dictionary backed by a newline-separated word
// file. Lookups never fail, which makes it the fallback when no
// network is available.
type WordList struct {
	words map[string]struct{}
}

// NewEmbeddedWordList loads the word list compiled into the binary.
func NewEmbeddedWordList() *WordList {
	return newWordList(embeddedWords)
}

func newWordList(data []byte) *WordList {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}
	return &WordList{words: words}
}

// Check reports whether the word is in the list.
func (l *WordList) Check(_ context.Context, word string) (bool, error) {
	_, ok := l.words[strings.ToLower(word)]
	return ok, nil
}

// Size returns the number of words in the list.
func (l *WordList) Size() int {
	return len(l.words)
}
