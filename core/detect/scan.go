// ABOUTME: Candidate collector shared by all detection strategies
// ABOUTME: Resolves references against the page URL and applies the error policy in one place

package detect

import (
	"fmt"
	"net/url"

	"feedfinder/core/document"
	"feedfinder/core/domain"
	coreerrors "feedfinder/core/errors"
	"feedfinder/core/interfaces"
	"feedfinder/core/urlresolve"
)

// ErrorPolicy decides what happens when one candidate cannot be resolved
type ErrorPolicy int

const (
	// FailFast aborts the whole detection on the first bad candidate
	FailFast ErrorPolicy = iota

	// SkipInvalid drops the bad candidate and keeps going
	SkipInvalid
)

// String returns the config spelling of the policy
func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case SkipInvalid:
		return "skip_invalid"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// ParseErrorPolicy parses "fail_fast" or "skip_invalid"
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "fail_fast", "":
		return FailFast, nil
	case "skip_invalid":
		return SkipInvalid, nil
	default:
		return FailFast, &coreerrors.ValidationError{Field: "error_policy", Message: fmt.Sprintf("unknown policy %q", s)}
	}
}

// scan collects the candidates of one strategy run
type scan struct {
	strategy string
	doc      *document.Document
	base     *url.URL
	policy   ErrorPolicy
	logger   interfaces.Logger
	feeds    []domain.Feed
}

// resolve adds a reference found in the page, resolved against the page URL
func (s *scan) resolve(kind domain.FeedKind, reference string) error {
	u, err := urlresolve.Join(s.base, reference)
	if err != nil {
		return s.reject(reference, err)
	}
	s.feeds = append(s.feeds, domain.NewFeed(u.String(), kind))
	return nil
}

// absolute adds a URL the strategy built itself
func (s *scan) absolute(kind domain.FeedKind, raw string) error {
	u, err := urlresolve.Parse(raw)
	if err != nil {
		return s.reject(raw, err)
	}
	s.feeds = append(s.feeds, domain.NewFeed(u.String(), kind))
	return nil
}

// reject is the only place an unresolvable candidate becomes a detection error
func (s *scan) reject(reference string, cause error) error {
	err := &coreerrors.URLResolutionError{Reference: reference, Cause: cause}
	if s.policy != SkipInvalid {
		return err
	}
	s.logger.Debug("Skipping unresolvable candidate", map[string]interface{}{
		"strategy":  s.strategy,
		"reference": reference,
		"error":     cause.Error(),
	})
	return nil
}
