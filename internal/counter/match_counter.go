package counter

import (
	"log/slog"
	"runtime"

	"github.com/chriscorrea/charcount/internal/charset"
	"github.com/chriscorrea/charcount/internal/chunk"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMinChunkSize keeps small inputs on a single goroutine.
	DefaultMinChunkSize = 64 * 1024

	// chunksPerWorker oversubscribes the pool a little so a slow chunk doesn't stall the rest
	chunksPerWorker = 4
)

// CountMatches returns the number of runes in text that are members of set.
// Runes are compared by exact scalar value, so a multi-codepoint emoji is
// evaluated one code point at a time.
func CountMatches(text string, set charset.Set) int {
	if text == "" || set.IsEmpty() {
		return 0
	}

	matches := 0
	for _, r := range text {
		if set.Contains(r) {
			matches++
		}
	}
	return matches
}

// MatchCounter counts target characters using a fixed-size pool of goroutines.
type MatchCounter struct {
	set          charset.Set
	workers      int
	minChunkSize int
}

// NewMatchCounter creates a MatchCounter for the given set.
// A non-positive workers value means runtime.NumCPU(); a non-positive
// minChunkSize means DefaultMinChunkSize.
func NewMatchCounter(set charset.Set, workers, minChunkSize int) Counter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if minChunkSize <= 0 {
		minChunkSize = DefaultMinChunkSize
	}
	return &MatchCounter{
		set:          set,
		workers:      workers,
		minChunkSize: minChunkSize,
	}
}

// Count returns the number of runes in text that belong to the target set.
// The text is split into rune-aligned chunks which are counted concurrently;
// the partial counts are summed, so the result does not depend on chunking.
func (mc *MatchCounter) Count(text string) int {
	if text == "" || mc.set.IsEmpty() {
		return 0
	}

	// a text can't keep more goroutines busy than it has bytes
	workers := min(mc.workers, len(text))

	chunks := chunk.Split(text, workers*chunksPerWorker, mc.minChunkSize)
	if len(chunks) == 1 {
		return CountMatches(chunks[0], mc.set)
	}
	workers = min(workers, len(chunks))

	// each goroutine owns one slot, so no locking is needed
	partials := make([]int, len(chunks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, c := range chunks {
		g.Go(func() error {
			partials[i] = CountMatches(c, mc.set)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	total := 0
	for _, p := range partials {
		total += p
	}

	slog.Debug("Match count calculated", "textLength", len(text), "chunks", len(chunks), "workers", workers, "matches", total)
	return total
}

// Name returns the name of this counting method for logging and debugging.
func (mc *MatchCounter) Name() string {
	return "matches"
}
