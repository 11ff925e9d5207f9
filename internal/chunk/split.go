// Package chunk divides text into pieces that can be scanned independently.
//
// Chunks are contiguous byte ranges of the original string whose boundaries
// always fall on UTF-8 rune starts, so counting each chunk and summing the
// results gives the same answer as counting the whole text.
package chunk

import (
	"log/slog"
	"unicode/utf8"
)

// Split divides text into at most n contiguous, non-overlapping chunks for parallel scanning.
//
// Chunks are roughly equal in byte length and never smaller than minSize
// (except the last one), so short texts come back as a single chunk. A chunk
// boundary is always moved forward to the next rune start, so no multi-byte
// UTF-8 sequence is ever split between two chunks. Concatenating the result
// yields text again.
func Split(text string, n, minSize int) []string {
	if text == "" {
		return nil
	}
	if n < 1 {
		n = 1
	}
	// never more chunks than bytes; also keeps the size arithmetic below from overflowing
	if n > len(text) {
		n = len(text)
	}
	if minSize < 1 {
		minSize = 1
	}

	size := (len(text) + n - 1) / n
	if size < minSize {
		size = minSize
	}

	chunks := make([]string, 0, (len(text)+size-1)/size)
	for start := 0; start < len(text); {
		end := start + size
		if end >= len(text) {
			end = len(text)
		} else {
			// advance to a rune boundary
			for end < len(text) && !utf8.RuneStart(text[end]) {
				end++
			}
		}
		chunks = append(chunks, text[start:end])
		start = end
	}

	slog.Debug("Split text for scanning", "textLength", len(text), "requested", n, "chunkSize", size, "chunks", len(chunks))
	return chunks
}
