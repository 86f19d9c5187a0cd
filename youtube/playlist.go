package youtube

import (
	"context"
	"fmt"

	yt "github.com/kkdai/youtube/v2"

	"github.com/sonnes/ytscribe/core"
)

// PlaylistInfo is a public playlist's title and flat video listing.
type PlaylistInfo struct {
	Title string         `json:"title"`
	URL   string         `json:"playlist_url"`
	Items []SearchResult `json:"videos"`
}

// FetchPlaylist lists a public playlist without fetching each video's full
// metadata. Fails with core.ErrMetadataUnavailable when the playlist is
// private, empty, or cannot be resolved.
func FetchPlaylist(ctx context.Context, playlistURL string) (*PlaylistInfo, error) {
	var client yt.Client

	pl, err := client.GetPlaylistContext(ctx, playlistURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch playlist: %v", core.ErrMetadataUnavailable, err)
	}
	if len(pl.Videos) == 0 {
		return nil, fmt.Errorf("%w: playlist is empty or unavailable", core.ErrMetadataUnavailable)
	}

	items := make([]SearchResult, 0, len(pl.Videos))
	for _, v := range pl.Videos {
		if v == nil || v.ID == "" {
			continue
		}
		items = append(items, SearchResult{
			VideoID:  v.ID,
			Title:    v.Title,
			Channel:  v.Author,
			Duration: int(v.Duration.Seconds()),
			URL:      "https://www.youtube.com/watch?v=" + v.ID,
		})
	}

	title := pl.Title
	if title == "" {
		title = "Unknown Playlist"
	}

	return &PlaylistInfo{Title: title, URL: playlistURL, Items: items}, nil
}
