package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sonnes/ytscribe/core"
)

const (
	defaultYtdlpPath    = "yt-dlp"
	defaultYtdlpTimeout = 2 * time.Minute
)

// Ytdlp runs keyword searches through the yt-dlp executable. Keyword search
// has no public endpoint; yt-dlp's ytsearch extractor with flat extraction
// returns result metadata without touching each video.
type Ytdlp struct {
	// Path is the yt-dlp executable. Defaults to "yt-dlp" on PATH.
	Path string
	// Timeout bounds a single invocation.
	Timeout time.Duration
}

// NewYtdlp creates a Ytdlp with defaults.
func NewYtdlp() *Ytdlp {
	return &Ytdlp{Path: defaultYtdlpPath, Timeout: defaultYtdlpTimeout}
}

// SearchResult is one row of a search or playlist listing.
type SearchResult struct {
	VideoID  string `json:"video_id"`
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	Duration int    `json:"duration_seconds,omitempty"` // seconds; 0 means unknown
	URL      string `json:"url"`
}

// Search returns up to maxResults keyword search results. Fails with
// core.ErrMetadataUnavailable when yt-dlp is missing or the search fails.
func (y *Ytdlp) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	path := y.Path
	if path == "" {
		path = defaultYtdlpPath
	}
	if _, err := exec.LookPath(path); err != nil {
		return nil, fmt.Errorf("%w: yt-dlp is not installed or not on PATH", core.ErrMetadataUnavailable)
	}

	timeout := y.Timeout
	if timeout == 0 {
		timeout = defaultYtdlpTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := fmt.Sprintf("ytsearch%d:%s", maxResults, query)
	cmd := exec.CommandContext(ctx, path, "--flat-playlist", "-J", "--no-warnings", target)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("running yt-dlp search", "target", target)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: yt-dlp: %v: %s",
			core.ErrMetadataUnavailable, err, strings.TrimSpace(stderr.String()))
	}

	return parseFlatPlaylist(stdout.Bytes())
}

// Flat-playlist JSON shape shared by search and playlist extraction.
type flatPlaylist struct {
	Entries []flatEntry `json:"entries"`
}

type flatEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Channel  string  `json:"channel"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	URL      string  `json:"url"`
}

func parseFlatPlaylist(data []byte) ([]SearchResult, error) {
	var pl flatPlaylist
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("%w: parse yt-dlp output: %v", core.ErrMetadataUnavailable, err)
	}

	var results []SearchResult
	for _, e := range pl.Entries {
		if e.ID == "" {
			continue
		}
		channel := e.Channel
		if channel == "" {
			channel = e.Uploader
		}
		u := e.URL
		if u == "" {
			u = "https://www.youtube.com/watch?v=" + e.ID
		}
		results = append(results, SearchResult{
			VideoID:  e.ID,
			Title:    e.Title,
			Channel:  channel,
			Duration: int(e.Duration),
			URL:      u,
		})
	}
	return results, nil
}
