// Package fileutil provides the small file and date helpers used when
// assembling template context: content digests for cache-busting asset URLs
// and calendar formatting.
package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// defaultShortHashLen is enough to make cache-busting URLs unique in
// practice while keeping them readable.
const defaultShortHashLen = 8

// Hash returns the SHA-256 hex digest of the file's contents. The file is
// streamed, not slurped, so large assets hash in constant memory.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ShortHash returns the first n characters of Hash(path), suitable for
// versioning asset URLs. n values outside (0, digest length] fall back to a
// default of 8.
func ShortHash(path string, n int) (string, error) {
	full, err := Hash(path)
	if err != nil {
		return "", err
	}
	if n <= 0 || n > len(full) {
		n = defaultShortHashLen
	}
	return full[:n], nil
}
