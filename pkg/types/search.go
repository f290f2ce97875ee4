// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for moment-search: the wire
// shapes exchanged with the search backend, the display-augmented moments the
// UI renders, and configuration.
package types

// SearchRequest is the body sent to the backend's search endpoint.
type SearchRequest struct {
	// Query is the text exactly as the user typed it.
	Query string `json:"query" yaml:"query"`
}

// Result is one video moment returned by the backend.
type Result struct {
	// VideoID identifies the source video on the embedding provider.
	VideoID string `json:"video_id" yaml:"video_id"`

	// VideoTitle is the display title of the source video.
	VideoTitle string `json:"video_title" yaml:"video_title"`

	// StartSeconds is the offset into the video where the moment begins.
	StartSeconds float64 `json:"start_seconds" yaml:"start_seconds"`

	// Timestamp is the backend's own label for the offset (e.g. "105s").
	// Optional; the UI derives its own display time.
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Score is the relevance score, expected between 0.0 and 1.0.
	Score float64 `json:"score" yaml:"score"`

	// Explanation says in plain language why this moment matches the query.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Snippet is the transcript text around the moment.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// Moment is a Result augmented with fields derived for display. None of the
// derived fields are ever sent back to a server.
type Moment struct {
	Result `yaml:",inline"`

	// Rank is the 1-based position in the result list.
	Rank int `json:"rank" yaml:"rank"`

	// DisplayTime is StartSeconds as "m:ss".
	DisplayTime string `json:"display_time" yaml:"display_time"`

	// Confidence is Score as a percentage with one decimal place.
	Confidence string `json:"confidence" yaml:"confidence"`

	// EmbedURL is the player locator, starting at StartSeconds.
	EmbedURL string `json:"embed_url" yaml:"embed_url"`

	// Autoplay is true only for the first moment in a list.
	Autoplay bool `json:"autoplay" yaml:"autoplay"`
}
