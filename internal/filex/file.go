// Package filex contains file helpers for the CLI.
package filex

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// ErrFileTooLarge is returned by ReadLimited when the file exceeds the limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadLimited reads the whole file at path, refusing files larger than limit
// bytes.
func ReadLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", path, ErrFileTooLarge, limit)
	}
	return data, nil
}

// ContentType guesses a MIME type from the file extension, falling back to
// application/octet-stream.
func ContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
