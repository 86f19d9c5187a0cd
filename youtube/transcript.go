package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	yt "github.com/kkdai/youtube/v2"

	"github.com/sonnes/ytscribe/core"
)

// TranscriptFetcher fetches the timed caption track of a video. The player
// API advertises the available tracks; the track body is timedtext XML
// served from the track's base URL.
type TranscriptFetcher struct {
	HTTP *http.Client

	client yt.Client
}

// NewTranscriptFetcher creates a TranscriptFetcher with a 30 second HTTP timeout.
func NewTranscriptFetcher() *TranscriptFetcher {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return &TranscriptFetcher{
		HTTP:   httpClient,
		client: yt.Client{HTTPClient: httpClient},
	}
}

// Fetch returns the transcript for a video in the first matching preferred
// language. For the same language a manually authored track beats an
// auto-generated one. Fails with core.ErrTranscriptUnavailable, listing the
// available languages when none match.
func (f *TranscriptFetcher) Fetch(ctx context.Context, videoID string, languages []string) (*core.Transcript, error) {
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	v, err := f.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrTranscriptUnavailable, err)
	}

	track := pickTrack(v.CaptionTracks, languages)
	if track == nil {
		return nil, fmt.Errorf("%w: no transcript for languages %v (available: %s)",
			core.ErrTranscriptUnavailable, languages, availableLanguages(v.CaptionTracks))
	}

	segments, err := f.fetchTimedtext(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	language := track.Name.SimpleText
	if language == "" {
		language = track.LanguageCode
	}

	return &core.Transcript{
		VideoID:      videoID,
		Language:     language,
		LanguageCode: track.LanguageCode,
		Generated:    track.Kind == "asr",
		Segments:     segments,
	}, nil
}

// pickTrack selects the best caption track for the preference order.
// Language codes match exactly or by base language ("en" matches "en-US").
func pickTrack(tracks []yt.CaptionTrack, languages []string) *yt.CaptionTrack {
	for _, lang := range languages {
		var generated *yt.CaptionTrack
		for i := range tracks {
			track := &tracks[i]
			if !langMatches(track.LanguageCode, lang) {
				continue
			}
			if track.Kind == "asr" {
				if generated == nil {
					generated = track
				}
				continue
			}
			return track
		}
		if generated != nil {
			return generated
		}
	}
	return nil
}

func langMatches(code, pref string) bool {
	if strings.EqualFold(code, pref) {
		return true
	}
	base, _, _ := strings.Cut(code, "-")
	return strings.EqualFold(base, pref)
}

func availableLanguages(tracks []yt.CaptionTrack) string {
	if len(tracks) == 0 {
		return "none"
	}
	codes := make([]string, len(tracks))
	for i, track := range tracks {
		codes[i] = track.LanguageCode
		if track.Kind == "asr" {
			codes[i] += " (auto)"
		}
	}
	return strings.Join(codes, ", ")
}

func (f *TranscriptFetcher) fetchTimedtext(ctx context.Context, baseURL string) ([]core.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrTranscriptUnavailable, err)
	}

	httpClient := f.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: timedtext request failed: %v", core.ErrTranscriptUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: timedtext returned status %d", core.ErrTranscriptUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read timedtext body: %v", core.ErrTranscriptUnavailable, err)
	}
	return parseTimedtext(data)
}

// timedtext is the XML document served from a caption track base URL:
//
//	<transcript><text start="1.3" dur="2.5">Hello there</text>...</transcript>
type timedtext struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Text  string  `xml:",chardata"`
	} `xml:"text"`
}

func parseTimedtext(data []byte) ([]core.Segment, error) {
	var tt timedtext
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("%w: parse timedtext: %v", core.ErrTranscriptUnavailable, err)
	}

	segments := make([]core.Segment, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		// Caption text is frequently double-escaped (&amp;#39;).
		segments = append(segments, core.Segment{
			Text:     html.UnescapeString(t.Text),
			Start:    t.Start,
			Duration: t.Dur,
		})
	}
	return segments, nil
}
