// Package fetch loads the text that charcount scans.
// Content is read whole into memory from a local file or standard input.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"
)

// MaxFileSizeBytes caps how much is read into memory.
const MaxFileSizeBytes = 1 << 30 // 1GiB

// ErrInvalidText is returned when content is not valid UTF-8.
var ErrInvalidText = errors.New("not valid UTF-8 text")

// ReadText reads the whole content of source and returns it as text.
//   - "-" reads from standard input
//   - everything else is treated as a local file path
//
// ctx is checked before reading begins; the read itself is a single synchronous call.
func ReadText(ctx context.Context, source string) (string, error) {
	rc, name, err := open(source)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	// read one byte past the limit so oversized stdin can be detected
	data, err := io.ReadAll(io.LimitReader(rc, MaxFileSizeBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) > MaxFileSizeBytes {
		return "", fmt.Errorf("content from %s exceeds size limit (%d bytes)", name, MaxFileSizeBytes)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is %w", name, ErrInvalidText)
	}

	slog.Debug("Read text", "source", name, "bytes", len(data))
	return string(data), nil
}

// open resolves source to a reader and a name for error messages.
func open(source string) (io.ReadCloser, string, error) {
	if source == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	rc, err := openFile(source)
	return rc, fmt.Sprintf("file %q", source), err
}

// openFile opens a local file for reading with better error messages
func openFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory, not a file", path)
	}

	// check file size before opening to prevent memory overload
	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}
