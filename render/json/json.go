// Package json renders a video record as an indented JSON document.
package json

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/sonnes/ytscribe/core"
	"github.com/sonnes/ytscribe/render"
)

// Renderer renders JSON records.
type Renderer struct {
	// Now overrides the fetched_at clock in tests. Nil means time.Now.
	Now func() time.Time
}

// New creates a JSON Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Ext implements render.Renderer.
func (r *Renderer) Ext() string { return ".json" }

type document struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Channel      string    `json:"channel"`
	ChannelURL   string    `json:"channel_url"`
	URL          string    `json:"url"`
	Duration     int       `json:"duration_seconds"`
	UploadDate   string    `json:"upload_date,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Language     string    `json:"language"`
	LanguageCode string    `json:"language_code"`
	Generated    bool      `json:"is_generated"`
	FetchedAt    string    `json:"fetched_at"`
	Segments     []segment `json:"segments"`
}

type segment struct {
	Text      string  `json:"text"`
	Start     float64 `json:"start"`
	Duration  float64 `json:"duration"`
	Timestamp string  `json:"timestamp"`
}

// Render implements render.Renderer.
func (r *Renderer) Render(w io.Writer, v *core.Video, t *core.Transcript) error {
	duration := v.Duration
	if duration == 0 {
		duration = t.DurationSeconds()
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	doc := document{
		VideoID:      v.ID,
		Title:        v.Title,
		Channel:      v.Channel,
		ChannelURL:   v.ChannelURL,
		URL:          v.WatchURL(),
		Duration:     duration,
		UploadDate:   v.UploadDate,
		ThumbnailURL: v.ThumbnailURL,
		Language:     t.Language,
		LanguageCode: t.LanguageCode,
		Generated:    t.Generated,
		FetchedAt:    now().UTC().Format(time.RFC3339),
		Segments:     make([]segment, len(t.Segments)),
	}
	for i, seg := range t.Segments {
		doc.Segments[i] = segment{
			Text:      seg.Text,
			Start:     round2(seg.Start),
			Duration:  round2(seg.Duration),
			Timestamp: render.Timestamp(seg.Start),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
