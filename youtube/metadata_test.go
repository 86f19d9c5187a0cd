package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/ytscribe/core"
)

func TestFetchOEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", r.URL.Query().Get("url"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "Test Video",
			"author_name": "Test Channel",
			"author_url": "https://www.youtube.com/@testchannel",
			"thumbnail_url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
		}`))
	}))
	defer srv.Close()

	f := &MetadataFetcher{HTTP: srv.Client(), OEmbedURL: srv.URL}
	v, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", v.ID)
	assert.Equal(t, "Test Video", v.Title)
	assert.Equal(t, "Test Channel", v.Channel)
	assert.Equal(t, "https://www.youtube.com/@testchannel", v.ChannelURL)
	assert.Equal(t, "oembed", v.Source)
	assert.Equal(t, 0, v.Duration, "oEmbed never reports duration")
}

func TestFetchOEmbedNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	f := &MetadataFetcher{HTTP: srv.Client(), OEmbedURL: srv.URL}
	_, err := f.Fetch(context.Background(), "missing12345"[:11])
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMetadataUnavailable)
}

func TestFetchOEmbedFallbackFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := &MetadataFetcher{HTTP: srv.Client(), OEmbedURL: srv.URL}
	v, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Title", v.Title)
	assert.Equal(t, "Unknown Channel", v.Channel)
}
