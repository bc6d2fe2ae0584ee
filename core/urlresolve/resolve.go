// ABOUTME: URL resolver for turning page references into absolute URLs
// ABOUTME: Wraps net/url parsing and RFC 3986 reference resolution

// Package urlresolve parses absolute URLs and resolves references found in
// markup against the URL the page was retrieved from.
package urlresolve

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotAbsolute is returned by Parse when the text has no scheme or host
var ErrNotAbsolute = errors.New("url is not absolute")

// Browsers drop ASCII tab and newline anywhere in a URL, so an attribute
// value wrapped across lines still names one URL.
var tabNewline = strings.NewReplacer("\t", "", "\n", "", "\r", "")

func clean(text string) string {
	return tabNewline.Replace(strings.TrimSpace(text))
}

// Parse parses text as an absolute URL
func Parse(text string) (*url.URL, error) {
	u, err := url.Parse(clean(text))
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, ErrNotAbsolute
	}
	return u, nil
}

// Join resolves reference against base. Absolute references ignore the base;
// root-relative ("/x") and directory-relative ("./x", "x") references are
// resolved the way a browser would.
func Join(base *url.URL, reference string) (*url.URL, error) {
	if base == nil || !base.IsAbs() {
		return nil, ErrNotAbsolute
	}
	ref, err := url.Parse(clean(reference))
	if err != nil {
		return nil, err
	}
	return base.ResolveReference(ref), nil
}
