package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Metadata is the persisted identity of a bundle, read from the manifest
// header. It is a read-only snapshot; a regeneration supersedes it by
// writing a fresh manifest.
type Metadata struct {
	Bundle    string
	Query     string
	SourceURL string
	CreatedAt string
}

// now is swapped out in tests.
var now = time.Now

// readMetadata parses the existing manifest header. Returns nil when no
// manifest exists.
func readMetadata(dir string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	fm := ParseFrontmatter(string(data))
	return &Metadata{
		Bundle:    fm["bundle"],
		Query:     fm["query"],
		SourceURL: fm["source_url"],
		CreatedAt: fm["created_at"],
	}, nil
}

// WriteIndex reconciles and writes the bundle manifest (_index.md),
// returning the manifest path.
//
// Metadata recorded in an existing manifest wins over the supplied name,
// query, and source URL unless the recorded value is empty, and the original
// created_at is kept, so regenerating the manifest is stable across runs.
//
// The entry list is the union of the directory's current records and the
// freshly saved entries, keyed by filename with the on-disk record winning,
// sorted ascending by filename. Saved entries whose files are already
// visible to the scan therefore contribute nothing new; the union only
// matters when a write has not yet surfaced in the directory listing.
func WriteIndex(dir, name, query string, saved []Entry, sourceURL string) (string, error) {
	prior, err := readMetadata(dir)
	if err != nil {
		return "", err
	}

	var createdAt string
	if prior != nil {
		if prior.Bundle != "" {
			name = prior.Bundle
		}
		if prior.Query != "" {
			query = prior.Query
		}
		if prior.SourceURL != "" {
			sourceURL = prior.SourceURL
		}
		createdAt = prior.CreatedAt
	}
	if createdAt == "" {
		createdAt = now().UTC().Format("2006-01-02 15:04:05") + " UTC"
	}

	scanned, err := Scan(dir)
	if err != nil {
		return "", err
	}
	entries := mergeEntries(scanned, saved)

	var b strings.Builder
	writeLine := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	// Values are written raw inside plain quotes, not Go-escaped: the
	// frontmatter parser strips exactly one layer of quotes, so escaping
	// here would compound on every regeneration.
	writeLine("---")
	writeLine(`bundle: "%s"`, name)
	writeLine(`query: "%s"`, query)
	writeLine("count: %d", len(entries))
	writeLine(`created_at: "%s"`, createdAt)
	if sourceURL != "" {
		writeLine(`source_url: "%s"`, sourceURL)
	}
	writeLine("---")
	writeLine("")
	writeLine("# %s", name)
	writeLine("")
	if sourceURL != "" {
		writeLine("> Source: [%s](%s)", query, sourceURL)
	} else {
		writeLine(`> Search query: "%s"`, query)
	}
	writeLine("> %d transcripts", len(entries))
	writeLine("")
	writeLine("## Contents")
	writeLine("")
	writeLine("| # | Title | Video |")
	writeLine("|---|-------|-------|")
	for i, e := range entries {
		writeLine("| %d | [%s](./%s) | [YouTube](https://youtube.com/watch?v=%s) |",
			i+1, e.Title, filepath.Base(e.Path), e.VideoID)
	}

	path := filepath.Join(dir, IndexFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write index: %w", err)
	}
	return path, nil
}

// mergeEntries unions scanned and saved entries by filename. Scanned entries
// win on collision since they reflect the directory's actual contents.
func mergeEntries(scanned, saved []Entry) []Entry {
	seen := make(map[string]bool, len(scanned))
	for _, e := range scanned {
		seen[filepath.Base(e.Path)] = true
	}

	merged := append([]Entry(nil), scanned...)
	for _, e := range saved {
		fname := filepath.Base(e.Path)
		if seen[fname] {
			continue
		}
		seen[fname] = true
		merged = append(merged, e)
	}

	sort.Slice(merged, func(i, j int) bool {
		return filepath.Base(merged[i].Path) < filepath.Base(merged[j].Path)
	})
	return merged
}
