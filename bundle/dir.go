package bundle

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBase is the output base directory used when none is given.
const DefaultBase = "transcripts"

// EnsureDir creates (if needed) and returns the directory for a named
// bundle: {base}/{name}/. An empty base defaults to ./transcripts. A
// pre-existing directory is not an error.
func EnsureDir(name, base string) (string, error) {
	if base == "" {
		base = DefaultBase
	}
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create bundle directory: %w", err)
	}
	return dir, nil
}
