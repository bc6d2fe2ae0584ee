package detect

import (
	"net/url"
	"strings"

	"feedfinder/core/domain"
)

// signature is a generator fingerprint. A signature either points at one
// root-relative path or climbs the page path looking for a feed file.
type signature struct {
	name    string
	matches func(text string, base *url.URL) bool
	path    string
	climb   string
}

// Order matters: markup can carry several fingerprints at once.
var signatures = []signature{
	{name: "tumblr", matches: mentions("tumblr.com"), path: "/rss"},
	{name: "wordpress", matches: mentions("wordpress"), path: "/feed"},
	{name: "hugo", matches: mentions("hugo"), climb: "index.xml"},
	{name: "jekyll", matches: jekyll, climb: "atom.xml"},
	{name: "ghost", matches: mentions("ghost"), path: "/rss/"},
}

// guess infers feed locations from the platform that generated the page
func guess(s *scan) error {
	text := strings.ToLower(s.doc.Text())

	for _, sig := range signatures {
		if !sig.matches(text, s.base) {
			continue
		}
		s.logger.Debug("Generator signature matched", map[string]interface{}{
			"signature": sig.name,
			"base_url":  s.base.String(),
		})
		if sig.climb == "" {
			return s.resolve(domain.KindGuess, sig.path)
		}
		for _, candidate := range climbPath(s.base, sig.climb) {
			if err := s.absolute(domain.KindGuess, candidate); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func mentions(needle string) func(string, *url.URL) bool {
	return func(text string, _ *url.URL) bool {
		return strings.Contains(text, needle)
	}
}

func jekyll(text string, base *url.URL) bool {
	return strings.Contains(text, "jekyll") || strings.HasSuffix(strings.ToLower(base.Hostname()), "github.io")
}

// climbPath returns file at every directory level of base's path, root
// first. An empty segment (a trailing slash) ends the climb. Query and
// fragment are dropped.
func climbPath(base *url.URL, file string) []string {
	root := (&url.URL{Scheme: base.Scheme, Host: base.Host}).String()

	candidates := []string{root + "/" + file}
	prefix := root
	for _, segment := range strings.Split(strings.TrimPrefix(base.EscapedPath(), "/"), "/") {
		if segment == "" {
			break
		}
		prefix += "/" + segment
		candidates = append(candidates, prefix+"/"+file)
	}
	return candidates
}
