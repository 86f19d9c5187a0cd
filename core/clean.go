package core

import (
	"html"
	"strings"
)

// Cleaner normalizes raw caption text for rendering: HTML entities are
// unescaped, internal whitespace is collapsed, empty segments are dropped,
// and consecutive segments with identical text are merged into one.
// Auto-generated captions frequently repeat the same line across adjacent
// timing windows.
type Cleaner struct{}

// Transform implements Transformer.
func (Cleaner) Transform(t *Transcript) error {
	out := t.Segments[:0]
	var prev string
	for _, seg := range t.Segments {
		text := strings.Join(strings.Fields(html.UnescapeString(seg.Text)), " ")
		if text == "" || text == prev {
			continue
		}
		seg.Text = text
		out = append(out, seg)
		prev = text
	}
	t.Segments = out
	return nil
}
