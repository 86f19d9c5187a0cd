package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yt "github.com/kkdai/youtube/v2"
)

func track(code, kind string) yt.CaptionTrack {
	t := yt.CaptionTrack{LanguageCode: code, Kind: kind}
	t.BaseURL = "https://example.com/timedtext?lang=" + code
	return t
}

func TestPickTrackPrefersManual(t *testing.T) {
	tracks := []yt.CaptionTrack{
		track("en", "asr"),
		track("en", ""),
	}
	got := pickTrack(tracks, []string{"en"})
	require.NotNil(t, got)
	assert.Empty(t, got.Kind, "manual track beats auto-generated")
}

func TestPickTrackFallsBackToGenerated(t *testing.T) {
	tracks := []yt.CaptionTrack{
		track("es", ""),
		track("en", "asr"),
	}
	got := pickTrack(tracks, []string{"en"})
	require.NotNil(t, got)
	assert.Equal(t, "asr", got.Kind)
	assert.Equal(t, "en", got.LanguageCode)
}

func TestPickTrackLanguageOrder(t *testing.T) {
	tracks := []yt.CaptionTrack{
		track("en", ""),
		track("es", ""),
	}
	got := pickTrack(tracks, []string{"es", "en"})
	require.NotNil(t, got)
	assert.Equal(t, "es", got.LanguageCode)
}

func TestPickTrackBaseLanguageMatch(t *testing.T) {
	tracks := []yt.CaptionTrack{track("en-US", "")}
	got := pickTrack(tracks, []string{"en"})
	require.NotNil(t, got)
	assert.Equal(t, "en-US", got.LanguageCode)
}

func TestPickTrackNoMatch(t *testing.T) {
	tracks := []yt.CaptionTrack{track("de", "")}
	assert.Nil(t, pickTrack(tracks, []string{"en", "es"}))
	assert.Nil(t, pickTrack(nil, []string{"en"}))
}

func TestParseTimedtext(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="0.12" dur="3.5">Hello there</text>
  <text start="3.62" dur="2.0">it&amp;#39;s a test &amp;amp; more</text>
  <text start="5.62" dur="1.8"></text>
</transcript>`)

	segments, err := parseTimedtext(data)
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.Equal(t, "Hello there", segments[0].Text)
	assert.InDelta(t, 0.12, segments[0].Start, 1e-9)
	assert.InDelta(t, 3.5, segments[0].Duration, 1e-9)

	// Double-escaped entities fully unescaped.
	assert.Equal(t, "it's a test & more", segments[1].Text)

	assert.Empty(t, segments[2].Text)
}

func TestParseTimedtextMalformed(t *testing.T) {
	_, err := parseTimedtext([]byte("not xml at all"))
	assert.Error(t, err)
}

func TestAvailableLanguages(t *testing.T) {
	assert.Equal(t, "none", availableLanguages(nil))
	assert.Equal(t, "en, de (auto)", availableLanguages([]yt.CaptionTrack{
		track("en", ""),
		track("de", "asr"),
	}))
}
