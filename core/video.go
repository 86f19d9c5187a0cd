// Package core defines the video metadata and transcript model that the
// fetch layer produces and the render and bundle layers consume.
package core

import "strings"

// Video is structured metadata for a single YouTube video.
type Video struct {
	ID           string `json:"video_id"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	ChannelURL   string `json:"channel_url,omitempty"`
	Duration     int    `json:"duration_seconds,omitempty"` // seconds; 0 means unknown
	UploadDate   string `json:"upload_date,omitempty"`      // YYYY-MM-DD
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Source       string `json:"source"` // provider that produced this record: "innertube", "oembed"
}

// WatchURL returns the canonical watch page URL for the video.
func (v *Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// Segment is a single timed caption line.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds from video start
	Duration float64 `json:"duration"` // seconds
}

// Transcript is an ordered sequence of timed caption segments in one language.
type Transcript struct {
	VideoID      string    `json:"video_id"`
	Language     string    `json:"language"`
	LanguageCode string    `json:"language_code"`
	Generated    bool      `json:"is_generated"` // auto-generated (ASR) rather than manually authored
	Segments     []Segment `json:"segments"`
}

// DurationSeconds estimates the video length from the final segment. Returns
// zero for an empty transcript.
func (t *Transcript) DurationSeconds() int {
	if len(t.Segments) == 0 {
		return 0
	}
	last := t.Segments[len(t.Segments)-1]
	return int(last.Start + last.Duration)
}

// FullText returns the concatenated plain text of all segments.
func (t *Transcript) FullText() string {
	parts := make([]string, len(t.Segments))
	for i, seg := range t.Segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, " ")
}
