// ABOUTME: Feed detector runs the ordered detection strategies over one HTML page
// ABOUTME: The first strategy that yields any candidate wins; errors abort the whole call

// Package detect finds candidate feed URLs referenced by, or inferable from,
// an HTML page. It performs no network I/O.
//
// Strategies run in a fixed order:
//
//  1. declared links (<link rel="alternate"> and legacy <meta rel="alternate">)
//  2. YouTube channel, user and playlist pages
//  3. body anchors whose href looks like a feed
//  4. guesses from the site generator, climbing the page path for static sites
//
// Results never mix strategies. An empty result is not an error.
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

// strategy is one detection tier
type strategy struct {
	name string
	find func(*scan) error
}

var strategies = [...]strategy{
	{name: "declared-link", find: declaredLinks},
	{name: "youtube", find: youtube},
	{name: "body-anchor", find: bodyAnchors},
	{name: "guess", find: guess},
}

// Detector runs detection. A Detector is immutable and safe for concurrent use.
type Detector struct {
	policy ErrorPolicy
	logger interfaces.Logger
}

// Option configures a Detector
type Option func(*Detector)

// WithErrorPolicy sets how unresolvable candidates are handled
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(d *Detector) {
		d.policy = policy
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(logger interfaces.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Detector. The zero configuration fails fast and logs nothing.
func New(opts ...Option) *Detector {
	d := &Detector{
		policy: FailFast,
		logger: interfaces.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDetector = New()

// Detect runs the default fail-fast detector
func Detect(base *url.URL, html string) ([]domain.Feed, error) {
	return defaultDetector.Detect(base, html)
}

// DetectString parses baseURL and runs the default detector
func DetectString(baseURL, html string) ([]domain.Feed, error) {
	return defaultDetector.DetectString(baseURL, html)
}

// Policy returns the detector's error policy
func (d *Detector) Policy() ErrorPolicy {
	return d.policy
}

// DetectString parses baseURL and runs Detect
func (d *Detector) DetectString(baseURL, html string) ([]domain.Feed, error) {
	base, err := urlresolve.Parse(baseURL)
	if err != nil {
		return nil, &coreerrors.URLResolutionError{Reference: baseURL, Cause: err}
	}
	return d.Detect(base, html)
}

// Detect returns the candidates of the first strategy that finds any, or an
// empty slice when none does. base must be the absolute URL html was
// retrieved from.
func (d *Detector) Detect(base *url.URL, html string) ([]domain.Feed, error) {
	if base == nil || !base.IsAbs() {
		return nil, &coreerrors.URLResolutionError{Reference: fmt.Sprint(base), Cause: urlresolve.ErrNotAbsolute}
	}

	doc := document.Parse(html)
	for _, st := range strategies {
		d.logger.Debug("Running strategy", map[string]interface{}{
			"strategy": st.name,
			"base_url": base.String(),
		})
		s := d.newScan(st.name, doc, base)
		if err := st.find(s); err != nil {
			return nil, coreerrors.WrapError(err, st.name)
		}
		if len(s.feeds) > 0 {
			d.logger.Debug("Strategy matched", map[string]interface{}{
				"strategy": st.name,
				"base_url": base.String(),
				"feeds":    len(s.feeds),
			})
			return s.feeds, nil
		}
	}

	d.logger.Debug("No feeds detected", map[string]interface{}{
		"base_url": base.String(),
	})
	return []domain.Feed{}, nil
}

func (d *Detector) newScan(name string, doc *document.Document, base *url.URL) *scan {
	return &scan{
		strategy: name,
		doc:      doc,
		base:     base,
		policy:   d.policy,
		logger:   d.logger,
	}
}
