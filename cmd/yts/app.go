package main

import (
	"fmt"

	"github.com/sonnes/ytscribe/batch"
	"github.com/sonnes/ytscribe/render"
	htmlrender "github.com/sonnes/ytscribe/render/html"
	jsonrender "github.com/sonnes/ytscribe/render/json"
	"github.com/sonnes/ytscribe/render/markdown"
	"github.com/sonnes/ytscribe/youtube"
)

// app holds the renderer registry used by CLI commands.
type app struct {
	renderers map[string]func() render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func() render.Renderer{
			"md":   func() render.Renderer { return markdown.New() },
			"json": func() render.Renderer { return jsonrender.New() },
			"html": func() render.Renderer { return htmlrender.New() },
		},
	}
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// newRunner assembles the batch runner with the real network-backed
// fetchers. Bundle runs always enrich metadata; a failed enrichment
// falls back to oEmbed inside the fetcher.
func (a *app) newRunner(renderer render.Renderer) *batch.Runner {
	return &batch.Runner{
		Resolve:     youtube.ExtractVideoID,
		Metadata:    youtube.NewMetadataFetcher(true),
		Transcripts: youtube.NewTranscriptFetcher(),
		Renderer:    renderer,
	}
}
