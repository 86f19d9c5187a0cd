// Package markdown renders a video record as Markdown: flat frontmatter
// (title, video_id, and the other fields the bundle scanner reads back),
// a metadata heading block, and a timestamped transcript body.
package markdown

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sonnes/ytscribe/core"
	"github.com/sonnes/ytscribe/render"
)

// Renderer renders Markdown records.
type Renderer struct {
	// Now overrides the fetched_at clock in tests. Nil means time.Now.
	Now func() time.Time
}

// New creates a markdown Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Ext implements render.Renderer.
func (r *Renderer) Ext() string { return ".md" }

// Render implements render.Renderer.
func (r *Renderer) Render(w io.Writer, v *core.Video, t *core.Transcript) error {
	duration := v.Duration
	if duration == 0 {
		duration = t.DurationSeconds()
	}

	kind := "manual"
	if t.Generated {
		kind = "auto-generated"
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	fetchedAt := now().UTC().Format("2006-01-02 15:04:05") + " UTC"

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	// Values are written raw inside plain quotes, not Go-escaped: the
	// bundle scanner strips exactly one layer of quotes when it reads the
	// title and video_id back, so escapes would leak into the manifest.
	line("---")
	line(`title: "%s"`, v.Title)
	line(`channel: "%s"`, v.Channel)
	line(`video_id: "%s"`, v.ID)
	line(`url: "%s"`, v.WatchURL())
	if duration > 0 {
		line(`duration: "%s"`, render.Duration(duration))
	}
	if v.UploadDate != "" {
		line(`upload_date: "%s"`, v.UploadDate)
	}
	line(`language: "%s"`, t.Language)
	line(`transcript_type: "%s"`, kind)
	line(`fetched_at: "%s"`, fetchedAt)
	line("---")
	line("")

	line("# %s", v.Title)
	line("")
	line("**Channel:** [%s](%s)", v.Channel, v.ChannelURL)
	if duration > 0 {
		line("**Duration:** %s", render.Duration(duration))
	}
	if v.UploadDate != "" {
		line("**Uploaded:** %s", v.UploadDate)
	}
	line("**Language:** %s (%s)", t.Language, kind)
	line("")
	line("---")
	line("")
	line("## Transcript")
	line("")

	for _, seg := range t.Segments {
		line("**[%s]** %s", render.Timestamp(seg.Start), seg.Text)
		line("")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
