// ABOUTME: Public types for the FeedFinder library API
// ABOUTME: Flattens the core feed value into plain fields for library callers

package feedfinder

import (
	"feedfinder/core/domain"
)

// Kind names the evidence a candidate came from: rss, atom, json, link or guess
type Kind string

const (
	KindRSS   Kind = "rss"
	KindAtom  Kind = "atom"
	KindJSON  Kind = "json"
	KindLink  Kind = "link"
	KindGuess Kind = "guess"
)

// Feed is one candidate feed URL. Candidates are not verified.
type Feed struct {
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
}

// Result is the outcome of discovering feeds on a fetched page
type Result struct {
	// URL is the page URL as requested
	URL string `json:"url"`

	// BaseURL is the final URL after redirects
	BaseURL string `json:"base_url"`

	Feeds []Feed `json:"feeds"`
}

func fromDomain(feeds []domain.Feed) []Feed {
	out := make([]Feed, len(feeds))
	for i, f := range feeds {
		out[i] = Feed{URL: f.URL(), Kind: Kind(f.Kind().String())}
	}
	return out
}
