package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonnes/ytscribe/core"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		id    string
		want  string
	}{
		{"simple", "Intro to Go", "vid00000001", "Intro_to_Go_vid00000001"},
		{"punctuation", "Go: The Good Parts!", "vid00000001", "Go__The_Good_Parts__vid00000001"},
		{"hyphens kept", "test-driven dev", "vid00000001", "test-driven_dev_vid00000001"},
		{"empty title", "", "vid00000001", "_vid00000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(&core.Video{Title: tt.title, ID: tt.id})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilenameTruncatesTitle(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := Filename(&core.Video{Title: long, ID: "vid00000001"})
	assert.True(t, strings.HasSuffix(got, "_vid00000001"), "video ID survives truncation")
	assert.LessOrEqual(t, len(got), 80+1+11)
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59.9, "0:59"},
		{61, "1:01"},
		{754, "12:34"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Timestamp(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m 0s"},
		{3945, "1h 5m 45s"},
		{3600, "1h 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.seconds), "seconds=%d", tt.seconds)
	}
}
