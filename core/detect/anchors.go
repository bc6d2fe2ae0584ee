package detect

import (
	"strings"

	"feedfinder/core/domain"
)

const anchorSelector = "body a"

// Matching is case-sensitive.
var anchorKeywords = []string{"feed", "xml", "rss", "atom"}

// bodyAnchors picks anchors whose href mentions a feed keyword. Each anchor
// yields at most one candidate; duplicates across anchors are kept.
func bodyAnchors(s *scan) error {
	anchors, err := s.doc.Select(anchorSelector)
	if err != nil {
		return err
	}

	for _, a := range anchors {
		href, ok := a.Attr("href")
		if !ok || !looksLikeFeed(href) {
			continue
		}
		if err := s.resolve(domain.KindLink, href); err != nil {
			return err
		}
	}
	return nil
}

func looksLikeFeed(href string) bool {
	for _, keyword := range anchorKeywords {
		if strings.Contains(href, keyword) {
			return true
		}
	}
	return false
}
