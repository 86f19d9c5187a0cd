// Package batch drives the fetch-render-save loop over a sequence of video
// identifiers, isolating per-item failures so one bad video never aborts the
// run.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sonnes/ytscribe/bundle"
	"github.com/sonnes/ytscribe/core"
	"github.com/sonnes/ytscribe/render"
)

// MetadataFetcher is the metadata capability the runner consumes. The
// youtube package provides the real implementation.
type MetadataFetcher interface {
	Fetch(ctx context.Context, videoID string) (*core.Video, error)
}

// TranscriptFetcher is the transcript capability the runner consumes.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) (*core.Transcript, error)
}

// Failure records one skipped input and the reason.
type Failure struct {
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// Event reports one settled item to the Progress callback.
type Event struct {
	Index   int // 1-based position in the input sequence
	Total   int
	Input   string
	VideoID string
	Title   string
	Path    string // record path; empty when skipped
	Err     error  // nil when saved
}

// Runner fetches, renders, and saves one record per input.
type Runner struct {
	// Resolve turns a raw input (URL or ID) into a video ID. Nil means
	// inputs are already video IDs.
	Resolve     func(raw string) (string, error)
	Metadata    MetadataFetcher
	Transcripts TranscriptFetcher
	Renderer    render.Renderer

	// Progress, when set, is called once per settled item.
	Progress func(ev Event)
}

// Run processes each input in order, writing one record file per success
// into dir. It returns the saved entries and the per-item failures, both in
// input order; it never aborts on a per-item error. The caller decides
// whether zero successes constitutes an overall failure.
//
// Context cancellation stops the loop between items. Records already
// written remain valid, and the bundle index can be regenerated from the
// directory alone afterwards.
func (r *Runner) Run(ctx context.Context, inputs []string, languages []string, dir string) ([]bundle.Entry, []Failure) {
	var saved []bundle.Entry
	var failures []Failure

	total := len(inputs)
	for i, input := range inputs {
		if ctx.Err() != nil {
			break
		}

		entry, err := r.runOne(ctx, input, languages, dir)
		if err != nil {
			failures = append(failures, Failure{Input: input, Reason: err.Error()})
			r.notify(Event{Index: i + 1, Total: total, Input: input, Err: err})
			continue
		}

		saved = append(saved, entry)
		r.notify(Event{
			Index: i + 1, Total: total, Input: input,
			VideoID: entry.VideoID, Title: entry.Title, Path: entry.Path,
		})
	}
	return saved, failures
}

func (r *Runner) runOne(ctx context.Context, input string, languages []string, dir string) (bundle.Entry, error) {
	videoID := input
	if r.Resolve != nil {
		id, err := r.Resolve(input)
		if err != nil {
			return bundle.Entry{}, err
		}
		videoID = id
	}

	meta, err := r.Metadata.Fetch(ctx, videoID)
	if err != nil {
		return bundle.Entry{}, err
	}

	transcript, err := r.Transcripts.Fetch(ctx, videoID, languages)
	if err != nil {
		return bundle.Entry{}, err
	}
	// Some providers (oEmbed) never report a duration; estimate it from the
	// transcript's final segment, before cleaning can drop trailing
	// empty or duplicate segments.
	if meta.Duration == 0 {
		meta.Duration = transcript.DurationSeconds()
	}

	if err := core.Chain(transcript, core.Cleaner{}); err != nil {
		return bundle.Entry{}, err
	}

	var content bytes.Buffer
	if err := r.Renderer.Render(&content, meta, transcript); err != nil {
		return bundle.Entry{}, fmt.Errorf("render record: %w", err)
	}

	path := filepath.Join(dir, render.Filename(meta)+r.Renderer.Ext())
	if err := os.WriteFile(path, content.Bytes(), 0o644); err != nil {
		return bundle.Entry{}, fmt.Errorf("write record: %w", err)
	}

	return bundle.Entry{Title: meta.Title, VideoID: meta.ID, Path: path}, nil
}

func (r *Runner) notify(ev Event) {
	if r.Progress != nil {
		r.Progress(ev)
	}
}
