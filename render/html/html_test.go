package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/ytscribe/core"
)

func TestRender(t *testing.T) {
	v := &core.Video{
		ID:      "dQw4w9WgXcQ",
		Title:   "Tags <escaped> & Sound",
		Channel: "Test Channel",
	}
	tr := &core.Transcript{
		Language: "English",
		Segments: []core.Segment{
			{Text: "hello world", Start: 0, Duration: 2},
		},
	}

	var b strings.Builder
	require.NoError(t, New().Render(&b, v, tr))
	out := b.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Tags &lt;escaped&gt; &amp; Sound</title>")
	assert.Contains(t, out, "hello world")
	assert.NotContains(t, out, "video_id:", "frontmatter stripped before conversion")
	// Markdown converted, not echoed.
	assert.Contains(t, out, "<h1")
	assert.NotContains(t, out, "## Transcript")
}

func TestStripFrontmatter(t *testing.T) {
	in := "---\ntitle: \"x\"\n---\n\n# Body\n"
	assert.Equal(t, "\n# Body\n", stripFrontmatter(in))

	plain := "# No header\n"
	assert.Equal(t, plain, stripFrontmatter(plain))
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".html", New().Ext())
}
