// Package counter provides text counting functionality for the charcount CLI tool.
//
// The core of the package is MatchCounter, which counts how many characters of
// a text belong to a target character set, scanning rune-aligned chunks of the
// text in parallel. The remaining counters (characters, words, and
// cl100k_base tokens) describe the size of the scanned text and back the
// --totals report.
//
// Usage Example:
//
//	set := charset.FromTokens([]string{"ab", "c"})
//	mc := counter.NewMatchCounter(set, 0, 0)
//	n := mc.Count("abcabc")
//	// n == 6
package counter

import "fmt"

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (matches, tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the size measures reported alongside the match count.
type CountingMethod int

const (
	// Characters counts runes including whitespace
	Characters CountingMethod = iota
	// Words counts whitespace-separated words
	Words
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Characters:
		return "characters"
	case Words:
		return "words"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// NewCounter creates a size Counter for the specified method.
// Returns an error if the counter cannot be initialized (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Characters:
		return NewCharCounter(), nil
	case Words:
		return NewWordCounter(), nil
	case Tokens:
		return NewTokenCounter(DefaultEncoding)
	default:
		return nil, fmt.Errorf("unknown counting method %d", int(method))
	}
}
