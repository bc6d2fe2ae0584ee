package detect

import (
	"net/url"
	"strings"

	"feedfinder/core/domain"
)

const youtubeFeedURL = "https://www.youtube.com/feeds/videos.xml"

var youtubeHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
}

// youtubeShape is one recognised page URL. Shapes are checked in order and
// only the first match is used, even when its id turns out to be missing.
type youtubeShape struct {
	matches func(u *url.URL, segments []string) bool
	id      func(u *url.URL, segments []string) string
	param   string
}

var youtubeShapes = []youtubeShape{
	{matches: firstSegment("channel"), id: secondSegment, param: "channel_id"},
	{matches: firstSegment("user"), id: secondSegment, param: "user"},
	{matches: pathIs("/playlist"), id: listParam, param: "playlist_id"},
	{matches: pathIs("/watch"), id: listParam, param: "playlist_id"},
}

// youtube maps channel, user and playlist pages to their Atom feeds.
// It looks only at the page URL, never at the markup.
func youtube(s *scan) error {
	if !youtubeHosts[strings.ToLower(s.base.Hostname())] {
		return nil
	}

	segments := pathSegments(s.base)
	for _, shape := range youtubeShapes {
		if !shape.matches(s.base, segments) {
			continue
		}
		id := shape.id(s.base, segments)
		if id == "" {
			return nil
		}
		return s.absolute(domain.KindAtom, youtubeFeedURL+"?"+shape.param+"="+url.QueryEscape(id))
	}
	return nil
}

// pathSegments splits the escaped path so an encoded slash stays inside its segment
func pathSegments(u *url.URL) []string {
	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")
	for i, seg := range segments {
		if unescaped, err := url.PathUnescape(seg); err == nil {
			segments[i] = unescaped
		}
	}
	return segments
}

func firstSegment(name string) func(*url.URL, []string) bool {
	return func(_ *url.URL, segments []string) bool {
		return segments[0] == name
	}
}

func pathIs(path string) func(*url.URL, []string) bool {
	return func(u *url.URL, _ []string) bool {
		return u.Path == path
	}
}

func secondSegment(_ *url.URL, segments []string) string {
	if len(segments) < 2 {
		return ""
	}
	return segments[1]
}

func listParam(u *url.URL, _ []string) string {
	return u.Query().Get("list")
}
