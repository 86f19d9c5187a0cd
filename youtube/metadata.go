package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	yt "github.com/kkdai/youtube/v2"

	"github.com/sonnes/ytscribe/core"
)

const defaultOEmbedURL = "https://www.youtube.com/oembed"

// MetadataFetcher fetches video metadata. When Enrich is set it asks the
// innertube player API first (duration, upload date, description) and falls
// back to the public oEmbed endpoint on failure; only the final failure
// surfaces. With Enrich unset it goes straight to oEmbed.
type MetadataFetcher struct {
	// HTTP is the client used for oEmbed requests.
	HTTP *http.Client
	// OEmbedURL overrides the oEmbed endpoint. Tests point it at a local server.
	OEmbedURL string
	Enrich    bool

	client yt.Client
}

// NewMetadataFetcher creates a MetadataFetcher with a 10 second HTTP timeout.
func NewMetadataFetcher(enrich bool) *MetadataFetcher {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return &MetadataFetcher{
		HTTP:      httpClient,
		OEmbedURL: defaultOEmbedURL,
		Enrich:    enrich,
		client:    yt.Client{HTTPClient: httpClient},
	}
}

// Fetch returns metadata for a video ID. Fails with core.ErrMetadataUnavailable.
func (f *MetadataFetcher) Fetch(ctx context.Context, videoID string) (*core.Video, error) {
	if f.Enrich {
		v, err := f.fetchInnertube(ctx, videoID)
		if err == nil {
			return v, nil
		}
		log.Warn("enriched metadata fetch failed, falling back to oEmbed", "video", videoID, "err", err)
	}
	return f.fetchOEmbed(ctx, videoID)
}

func (f *MetadataFetcher) fetchInnertube(ctx context.Context, videoID string) (*core.Video, error) {
	v, err := f.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMetadataUnavailable, err)
	}

	meta := &core.Video{
		ID:          videoID,
		Title:       v.Title,
		Channel:     v.Author,
		Duration:    int(v.Duration.Seconds()),
		Description: v.Description,
		Source:      "innertube",
	}
	if v.ChannelID != "" {
		meta.ChannelURL = "https://www.youtube.com/channel/" + v.ChannelID
	}
	if !v.PublishDate.IsZero() {
		meta.UploadDate = v.PublishDate.Format("2006-01-02")
	}
	if len(v.Thumbnails) > 0 {
		// Thumbnails are ordered smallest-first.
		meta.ThumbnailURL = v.Thumbnails[len(v.Thumbnails)-1].URL
	}
	return meta, nil
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// fetchOEmbed gets basic metadata from the oEmbed endpoint. oEmbed never
// reports duration or upload date.
func (f *MetadataFetcher) fetchOEmbed(ctx context.Context, videoID string) (*core.Video, error) {
	endpoint := f.OEmbedURL
	if endpoint == "" {
		endpoint = defaultOEmbedURL
	}

	params := url.Values{}
	params.Set("url", "https://www.youtube.com/watch?v="+videoID)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMetadataUnavailable, err)
	}

	httpClient := f.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: oEmbed request failed: %v", core.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: oEmbed returned status %d", core.ErrMetadataUnavailable, resp.StatusCode)
	}

	var data oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decode oEmbed response: %v", core.ErrMetadataUnavailable, err)
	}

	title := data.Title
	if title == "" {
		title = "Unknown Title"
	}
	channel := data.AuthorName
	if channel == "" {
		channel = "Unknown Channel"
	}

	return &core.Video{
		ID:           videoID,
		Title:        title,
		Channel:      channel,
		ChannelURL:   data.AuthorURL,
		ThumbnailURL: data.ThumbnailURL,
		Source:       "oembed",
	}, nil
}
