package counter

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// CharCounter counts runes, so a multi-byte character counts once.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of runes in text.
func (cc *CharCounter) Count(text string) int {
	n := utf8.RuneCountInString(text)
	slog.Debug("Character count calculated", "textLength", len(text), "charCount", n)
	return n
}

func (cc *CharCounter) Name() string {
	return "characters"
}

// WordCounter counts words separated by Unicode whitespace.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of whitespace-separated fields in text.
func (wc *WordCounter) Count(text string) int {
	n := len(strings.Fields(text))
	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", n)
	return n
}

func (wc *WordCounter) Name() string {
	return "words"
}
