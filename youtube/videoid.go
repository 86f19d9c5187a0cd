// Package youtube fetches video metadata, caption transcripts, search
// results, and playlists. Metadata comes from the innertube player API with
// an oEmbed fallback; transcripts come from the timedtext caption tracks the
// player API advertises; keyword search shells out to yt-dlp.
package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/sonnes/ytscribe/core"
)

// Video IDs are 11 characters: alphanumeric, hyphens, underscores.
var videoIDRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Path-based IDs: /embed/ID, /shorts/ID, /live/ID, /v/ID.
var pathIDRE = regexp.MustCompile(`^/(?:embed|shorts|live|v)/([a-zA-Z0-9_-]{11})`)

// ExtractVideoID extracts a YouTube video ID from a URL or raw ID string.
// Fails with core.ErrInvalidVideoID when the input cannot be parsed.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if videoIDRE.MatchString(raw) {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidVideoID, raw)
	}

	switch u.Hostname() {
	case "www.youtube.com", "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			if vid := u.Query().Get("v"); videoIDRE.MatchString(vid) {
				return vid, nil
			}
		}
		if m := pathIDRE.FindStringSubmatch(u.Path); m != nil {
			return m[1], nil
		}
	case "youtu.be":
		if vid := strings.TrimPrefix(u.Path, "/"); videoIDRE.MatchString(vid) {
			return vid, nil
		}
	}

	return "", fmt.Errorf("%w: %q", core.ErrInvalidVideoID, raw)
}
