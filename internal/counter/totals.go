package counter

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Totals describes the size of a scanned text.
type Totals struct {
	Characters int
	Words      int
	Tokens     int

	// TokensAvailable is false when the tiktoken encoding could not be loaded
	// (it is fetched over the network on first use).
	TokensAvailable bool
}

// String renders totals as "12 characters, 3 words, 4 tokens".
func (t Totals) String() string {
	tokens := "tokens unavailable"
	if t.TokensAvailable {
		tokens = fmt.Sprintf("%d %s", t.Tokens, Tokens)
	}
	return fmt.Sprintf("%d %s, %d %s, %s",
		t.Characters, Characters, t.Words, Words, tokens)
}

// ComputeTotals measures text with every size counter concurrently.
// A token encoding that fails to load only leaves Tokens unavailable.
func ComputeTotals(text string) Totals {
	return computeTotals(text, DefaultEncoding)
}

func computeTotals(text, encoding string) Totals {
	constructors := []func() (Counter, error){
		func() (Counter, error) { return NewCounter(Characters) },
		func() (Counter, error) { return NewCounter(Words) },
		func() (Counter, error) { return NewTokenCounter(encoding) },
	}
	counts := make([]int, len(constructors))
	errs := make([]error, len(constructors))

	var g errgroup.Group
	for i, newCounter := range constructors {
		g.Go(func() error {
			c, err := newCounter()
			if err != nil {
				errs[i] = err
				return nil
			}
			counts[i] = c.Count(text)
			return nil
		})
	}
	_ = g.Wait() // failures are recorded per counter

	if errs[2] != nil {
		slog.Warn("Token count unavailable", "encoding", encoding, "error", errs[2])
	}

	return Totals{
		Characters:      counts[0],
		Words:           counts[1],
		Tokens:          counts[2],
		TokensAvailable: errs[2] == nil,
	}
}
