// ABOUTME: Feed domain model represents one candidate feed URL found on a page
// ABOUTME: A Feed pairs an absolute URL with the kind of evidence that produced it

package domain

import (
	"encoding/json"
	"fmt"
)

// FeedKind classifies how a candidate feed was found
type FeedKind int

const (
	// KindRSS is a declared link with type application/rss+xml
	KindRSS FeedKind = iota + 1

	// KindAtom is a declared link with type application/atom+xml, or a platform feed
	KindAtom

	// KindJSON is a declared link with type application/json
	KindJSON

	// KindLink is a body anchor whose href looks like a feed
	KindLink

	// KindGuess is inferred from the site generator, with no declaration at all
	KindGuess
)

var kindNames = map[FeedKind]string{
	KindRSS:   "rss",
	KindAtom:  "atom",
	KindJSON:  "json",
	KindLink:  "link",
	KindGuess: "guess",
}

// String returns the lowercase kind name
func (k FeedKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FeedKind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k FeedKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown feed kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *FeedKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown feed kind %q", string(text))
}

// Feed is a candidate feed. It is comparable with == and never mutated once built.
type Feed struct {
	url  string
	kind FeedKind
}

// NewFeed creates a Feed. absoluteURL must already be resolved against the page URL.
func NewFeed(absoluteURL string, kind FeedKind) Feed {
	return Feed{url: absoluteURL, kind: kind}
}

// URL returns the absolute feed URL
func (f Feed) URL() string {
	return f.url
}

// Kind returns how the feed was found
func (f Feed) Kind() FeedKind {
	return f.kind
}

// String formats the feed for terminal output
func (f Feed) String() string {
	return f.kind.String() + " " + f.url
}

type feedJSON struct {
	URL  string   `json:"url"`
	Kind FeedKind `json:"kind"`
}

// MarshalJSON encodes the feed as {"url": ..., "kind": ...}
func (f Feed) MarshalJSON() ([]byte, error) {
	return json.Marshal(feedJSON{URL: f.url, Kind: f.kind})
}

// UnmarshalJSON decodes the form produced by MarshalJSON
func (f *Feed) UnmarshalJSON(data []byte) error {
	var v feedJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.url = v.URL
	f.kind = v.Kind
	return nil
}
