package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding used for --totals.
const DefaultEncoding = "cl100k_base"

// TokenCounter implements token counting using a tiktoken encoding.
type TokenCounter struct {
	encodingName string
	encoding     *tiktoken.Tiktoken
	mu           sync.RWMutex // protects encoding access for thread safety
}

// NewTokenCounter creates a new TokenCounter for the named encoding.
func NewTokenCounter(encodingName string) (Counter, error) {
	slog.Debug("Initializing TokenCounter", "encoding", encodingName)

	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s encoding: %w", encodingName, err)
	}

	return &TokenCounter{
		encodingName: encodingName,
		encoding:     encoding,
	}, nil
}

// Count returns the number of tokens in text. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// nil params mean no special tokens allowed/disallowed
	tokenCount := len(tc.encoding.Encode(text, nil, nil))

	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", tokenCount)
	return tokenCount
}

// Name returns the name of this counting method (for logging and debugging).
func (tc *TokenCounter) Name() string {
	return fmt.Sprintf("tokens (%s)", tc.encodingName)
}
