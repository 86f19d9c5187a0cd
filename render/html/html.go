// Package html renders a video record as a standalone HTML page styled with
// Tailwind CSS (CDN). The Markdown record body is converted with goldmark
// configured for GFM and syntax highlighting.
package html

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/sonnes/ytscribe/core"
	"github.com/sonnes/ytscribe/render/markdown"
)

// Renderer renders standalone HTML records.
type Renderer struct {
	md    goldmark.Markdown
	inner *markdown.Renderer
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)
	return &Renderer{md: md, inner: markdown.New()}
}

// Ext implements render.Renderer.
func (r *Renderer) Ext() string { return ".html" }

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"></script>
</head>
<body class="bg-slate-50 text-slate-900">
<main class="prose prose-slate mx-auto max-w-3xl px-4 py-10">
%s</main>
</body>
</html>
`

// Render implements render.Renderer. The markdown record is rendered first,
// its frontmatter dropped (goldmark would show it as a paragraph), and the
// body converted to HTML.
func (r *Renderer) Render(w io.Writer, v *core.Video, t *core.Transcript) error {
	var record bytes.Buffer
	if err := r.inner.Render(&record, v, t); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := r.md.Convert([]byte(stripFrontmatter(record.String())), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	_, err := fmt.Fprintf(w, page, html.EscapeString(v.Title), body.String())
	return err
}

func stripFrontmatter(s string) string {
	if !strings.HasPrefix(s, "---\n") {
		return s
	}
	rest := s[len("---\n"):]
	if _, body, ok := strings.Cut(rest, "\n---\n"); ok {
		return body
	}
	return s
}
