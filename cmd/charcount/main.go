package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/chriscorrea/charcount/internal/app"
	"github.com/chriscorrea/charcount/internal/charset"
	"github.com/chriscorrea/charcount/internal/counter"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	file, _ := cmd.Flags().GetString("file")
	chars, _ := cmd.Flags().GetStringArray("chars")
	workers, _ := cmd.Flags().GetInt("workers")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	totals, _ := cmd.Flags().GetBool("totals")
	html, _ := cmd.Flags().GetBool("html")
	selector, _ := cmd.Flags().GetString("selector")
	readable, _ := cmd.Flags().GetBool("readable")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	if workers < 1 {
		return app.Config{}, fmt.Errorf("--workers must be at least 1, got %d", workers)
	}
	if chunkSize < 1 {
		return app.Config{}, fmt.Errorf("--chunk-size must be at least 1, got %d", chunkSize)
	}

	// positional arguments continue the --chars list, so `-c ab c` works like `-c ab -c c`
	tokens := append(append([]string{}, chars...), args...)
	if charset.FromTokens(tokens).IsEmpty() {
		return app.Config{}, app.ErrNoCharacters
	}

	return app.Config{
		File:         file,
		Tokens:       tokens,
		Workers:      workers,
		MinChunkSize: chunkSize,
		Totals:       totals,
		HTML:         html || selector != "" || readable, // selector and readable imply HTML
		Selector:     selector,
		Readable:     readable,
		Quiet:        quiet,
		Debug:        debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charcount -f <file> -c <chars>...",
		Short: "Count occurrences of a set of characters in a text file",
		Long: `Charcount reads a text file and counts every occurrence of any character from a given set.

Each --chars value contributes all of its characters to the set; values may be repeated
or listed after the flags. Characters are matched by exact Unicode code point.

Examples:
  charcount -f book.txt -c aeiou
  charcount -f post.txt -c '.' ',' '!' '\ '
  charcount --html -f page.html -c 🌽`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true, // main prints the error
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			config, err := buildConfig(cmd, args)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			// flags parsed fine; don't bury runtime errors under usage text
			cmd.SilenceUsage = true

			setupLogger(config.Debug)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			result, err := app.Run(ctx, config)
			if err != nil {
				return fmt.Errorf("charcount failed: %w", err)
			}
			result.Elapsed = time.Since(start)

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "File to be inspected (\"-\" reads standard input)")
	cmd.Flags().StringArrayP("chars", "c", nil, "Characters to search for; each value adds all of its characters. Shell-special characters must be quoted or escaped, like this: \"\\ \"")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("chars")

	// scanning
	cmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of parallel scanners")
	cmd.Flags().Int("chunk-size", counter.DefaultMinChunkSize, "Minimum bytes per scanned chunk")

	// reporting
	cmd.Flags().BoolP("totals", "t", false, "Also report characters, words, and tokens in the file")

	// HTML input
	cmd.Flags().Bool("html", false, "Treat the file as HTML and count only its text content")
	cmd.Flags().String("selector", "", "CSS selector restricting HTML text (implies --html)")
	cmd.Flags().Bool("readable", false, "Reduce HTML to its main article before counting (implies --html)")

	// other flags
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the progress spinner")
	cmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
