package detect

import "feedfinder/core/domain"

// Legacy pages put the declaration on <meta>; both are read in document order.
const declaredSelector = "link[rel='alternate'], meta[rel='alternate']"

var declaredTypes = map[string]domain.FeedKind{
	"application/rss+xml":  domain.KindRSS,
	"application/atom+xml": domain.KindAtom,
	"application/json":     domain.KindJSON,
}

// declaredLinks reads alternate links whose type names a feed format
func declaredLinks(s *scan) error {
	elements, err := s.doc.Select(declaredSelector)
	if err != nil {
		return err
	}

	for _, el := range elements {
		mimeType, ok := el.Attr("type")
		if !ok {
			continue
		}
		kind, ok := declaredTypes[mimeType]
		if !ok {
			continue
		}
		href, ok := el.Attr("href")
		if !ok {
			continue
		}
		if err := s.resolve(kind, href); err != nil {
			return err
		}
	}
	return nil
}
