package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chriscorrea/charcount/internal/counter"
	"github.com/chriscorrea/charcount/internal/fetch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		tokens   []string
		html     bool
		selector string
		expected int
	}{
		{"emoji", "Lorem ipsum 🍆🍑💦🌽🌽🌽🥑", []string{"🌽"}, false, "", 3},
		{"empty file", "", []string{"o"}, false, "", 0},
		{"flattened tokens", "abcabc", []string{"ab", "c"}, false, "", 6},
		{"repeated tokens are idempotent", "abcabc", []string{"a", "a", "aa"}, false, "", 2},
		{"comma is an ordinary character", "a,b,c", []string{","}, false, "", 2},
		{"html text only", `<p class="x">a.b</p><script>x=".."</script>`, []string{"."}, true, "", 1},
		{"html title not counted", `<html><head><title>a.b.c</title></head><body><p>x.</p></body></html>`, []string{"."}, true, "", 1},
		{"html selector", `<p>a.</p><p class="x">b..</p>`, []string{"."}, true, "p.x", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				File:     writeTemp(t, "input.txt", tt.content),
				Tokens:   tt.tokens,
				Workers:  2,
				HTML:     tt.html,
				Selector: tt.selector,
				Quiet:    true,
			}

			result, err := Run(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Matches)
			assert.Nil(t, result.Totals)
		})
	}
}

func TestRunTotals(t *testing.T) {
	cfg := Config{
		File:   writeTemp(t, "input.txt", "one two three"),
		Tokens: []string{"e"},
		Totals: true,
		Quiet:  true,
	}

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Matches)
	require.NotNil(t, result.Totals)
	assert.Equal(t, 13, result.Totals.Characters)
	assert.Equal(t, 3, result.Totals.Words)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.txt")
	require.NoError(t, os.WriteFile(invalid, []byte{0xff, 0xfe}, 0o644))

	tests := []struct {
		name        string
		cfg         Config
		expectError string
		expectIs    error
	}{
		{
			name:        "no file",
			cfg:         Config{Tokens: []string{"a"}},
			expectError: "no file provided",
		},
		{
			name:     "no characters",
			cfg:      Config{File: invalid, Tokens: []string{""}},
			expectIs: ErrNoCharacters,
		},
		{
			name:        "missing file",
			cfg:         Config{File: filepath.Join(dir, "missing.txt"), Tokens: []string{"a"}},
			expectError: "failed to read file content: file",
		},
		{
			name:     "invalid text",
			cfg:      Config{File: invalid, Tokens: []string{"a"}},
			expectIs: fetch.ErrInvalidText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Quiet = true
			_, err := Run(context.Background(), tt.cfg)
			require.Error(t, err)
			if tt.expectError != "" {
				assert.Contains(t, err.Error(), tt.expectError)
			}
			if tt.expectIs != nil {
				assert.True(t, errors.Is(err, tt.expectIs), "error %v should wrap %v", err, tt.expectIs)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	r := Result{Matches: 3, Elapsed: 1500 * time.Microsecond}
	assert.Equal(t, "Found 3 symbol occurrences total in 1.5ms", r.String())

	r.Totals = &counter.Totals{Characters: 10, Words: 2, Tokens: 3, TokensAvailable: true}
	got := r.String()
	assert.True(t, strings.HasSuffix(got, "(10 characters, 2 words, 3 tokens)"), got)
}
