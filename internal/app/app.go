// Package app contains the core application logic for the charcount CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chriscorrea/charcount/internal/charset"
	"github.com/chriscorrea/charcount/internal/counter"
	"github.com/chriscorrea/charcount/internal/extract"
	"github.com/chriscorrea/charcount/internal/fetch"
	"github.com/chriscorrea/charcount/internal/spinner"
)

// ErrNoCharacters is returned when the character tokens contribute nothing to the set.
var ErrNoCharacters = errors.New("no characters to search for")

// Config holds all configuration options for the charcount application.
type Config struct {
	File         string   // file path, or "-" for stdin
	Tokens       []string // character tokens; every rune of every token is a target
	Workers      int      // parallel scanners (<= 0 means runtime.NumCPU())
	MinChunkSize int      // smallest chunk handed to a scanner, in bytes
	Totals       bool     // also report characters, words, and tokens
	HTML         bool     // count only the text content of an HTML document
	Selector     string   // CSS selector applied in HTML mode
	Readable     bool     // reduce HTML to its main article first
	Quiet        bool     // suppress the progress spinner
	Debug        bool
}

// Result is the outcome of a single run.
type Result struct {
	Matches int
	Elapsed time.Duration
	Totals  *counter.Totals // nil unless Config.Totals
}

// String renders the single line printed on success.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d symbol occurrences total in %s", r.Matches, r.Elapsed)
	if r.Totals != nil {
		fmt.Fprintf(&b, " (%s)", r.Totals)
	}
	return b.String()
}

// Run executes the main charcount application logic with the given configuration.
//
// Processing Pipeline:
// 1. Build the target character set from the tokens
// 2. Load the file content (and reduce HTML to text if requested)
// 3. Count matches in parallel, plus totals if requested
//
// Result.Elapsed is left for the caller, which owns the start instant.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.File == "" {
		return Result{}, fmt.Errorf("no file provided")
	}

	set := charset.FromTokens(cfg.Tokens)
	if set.IsEmpty() {
		return Result{}, ErrNoCharacters
	}
	slog.Debug("Target characters", "set", set.String(), "size", set.Len())

	spin := newProgress(cfg.Quiet)
	spin.Start(ctx)
	defer spin.Stop()

	text, err := loadText(ctx, cfg)
	if err != nil {
		return Result{}, err
	}

	spin.UpdateMessage("Counting...")
	result := Result{
		Matches: counter.NewMatchCounter(set, cfg.Workers, cfg.MinChunkSize).Count(text),
	}

	if cfg.Totals {
		totals := counter.ComputeTotals(text)
		result.Totals = &totals
	}

	return result, nil
}

// loadText reads the file and, in HTML mode, reduces it to its text content.
func loadText(ctx context.Context, cfg Config) (string, error) {
	text, err := fetch.ReadText(ctx, cfg.File)
	if err != nil {
		return "", fmt.Errorf("failed to read file content: %w", err)
	}

	if !cfg.HTML {
		return text, nil
	}

	text, err = extract.ToText(strings.NewReader(text), cfg.Selector, cfg.Readable, nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from HTML: %w", err)
	}
	slog.Debug("Extracted HTML text", "textLength", len(text))
	return text, nil
}

// progress is the subset of spinner behavior Run needs.
type progress interface {
	Start(ctx context.Context)
	Stop()
	UpdateMessage(message string)
}

// noProgress is used when stderr is redirected or --quiet is set.
type noProgress struct{}

func (noProgress) Start(context.Context) {}
func (noProgress) Stop()                 {}
func (noProgress) UpdateMessage(string)  {}

func newProgress(quiet bool) progress {
	if quiet || !spinner.IsTerminal(os.Stderr) {
		return noProgress{}
	}
	return spinner.New(os.Stderr, "Reading...")
}
