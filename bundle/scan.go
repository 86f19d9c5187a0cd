package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IndexFile is the reserved manifest filename. It never matches the record
// scan.
const IndexFile = "_index.md"

// Entry is one archived video's record inside a bundle directory. Entries
// are immutable once constructed.
type Entry struct {
	Title   string
	VideoID string
	Path    string
}

// Scan enumerates the record files (*.md, excluding the manifest) in a
// bundle directory, sorted ascending by filename, and extracts each file's
// title and video ID from its frontmatter. A record without usable
// frontmatter falls back to the filename stem for the title and an empty
// video ID; malformed records never fail the scan.
func Scan(dir string) ([]Entry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("scan bundle directory: %w", err)
	}
	sort.Strings(paths)

	var entries []Entry
	for _, p := range paths {
		name := filepath.Base(p)
		if name == IndexFile {
			continue
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read record %s: %w", name, err)
		}

		fm := ParseFrontmatter(string(data))
		title := fm["title"]
		if title == "" {
			title = strings.TrimSuffix(name, ".md")
		}

		entries = append(entries, Entry{
			Title:   title,
			VideoID: fm["video_id"],
			Path:    p,
		})
	}
	return entries, nil
}
