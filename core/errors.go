package core

import "errors"

// Sentinel errors for the fetch layer. The batch runner and CLI match these
// with errors.Is to decide whether a failure is isolated to one video (skip)
// or fatal for the whole run.
var (
	// ErrInvalidVideoID means the input could not be parsed to a video ID.
	ErrInvalidVideoID = errors.New("invalid video ID")

	// ErrMetadataUnavailable means every metadata provider failed for a video.
	ErrMetadataUnavailable = errors.New("metadata unavailable")

	// ErrTranscriptUnavailable means no transcript exists for the requested
	// languages, or captions are disabled for the video.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
)
