// Package render defines the interface for rendering a fetched video and
// its transcript into record documents.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/sonnes/ytscribe/core"
)

// Renderer writes a record document for a video and its transcript.
type Renderer interface {
	Render(w io.Writer, v *core.Video, t *core.Transcript) error

	// Ext returns the file extension for records this renderer produces,
	// including the leading dot.
	Ext() string
}

const maxTitleLen = 80

// Filename generates a filesystem-safe record filename (without extension)
// from video metadata: {sanitized_title}_{video_id}. Letters, digits, spaces,
// and hyphens are kept; everything else becomes an underscore; whitespace
// runs collapse to single underscores; the title part is capped at 80 runes.
func Filename(v *core.Video) string {
	var b strings.Builder
	for _, r := range v.Title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	safe := strings.Join(strings.Fields(b.String()), "_")
	if runes := []rune(safe); len(runes) > maxTitleLen {
		safe = string(runes[:maxTitleLen])
	}
	return safe + "_" + v.ID
}

// Timestamp formats seconds as H:MM:SS, or M:SS under an hour.
func Timestamp(seconds float64) string {
	total := int(seconds)
	hours, rem := total/3600, total%3600
	mins, secs := rem/60, rem%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Duration formats a duration in seconds as a human-readable string such as
// "1h 23m 4s".
func Duration(seconds int) string {
	hours, rem := seconds/3600, seconds%3600
	mins, secs := rem/60, rem%60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	parts = append(parts, fmt.Sprintf("%ds", secs))
	return strings.Join(parts, " ")
}
