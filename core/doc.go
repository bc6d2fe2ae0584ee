// Package core contains the feed detection logic for FeedFinder.
// It has no HTTP server dependencies and can be used on its own.
//
// The core package is organized into several sub-packages:
//
// - domain: Feed and FeedKind value types, discovery results
// - detect: the ordered detection pipeline and its strategies
// - document: parsed HTML with CSS selector queries
// - urlresolve: absolute URL parsing and relative reference resolution
// - discovery: fetch-then-detect service used by the API and CLI
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Detection
//
// Strategies run in order: declared links, YouTube, body anchors, generator
// guess. The first strategy that yields any candidate wins; a strategy error
// stops the pipeline.
//
//	base, _ := url.Parse("https://example.com/example")
//	feeds, err := detect.Detect(base, html)
//	if err != nil {
//	    // *errors.URLResolutionError or *errors.QueryError
//	}
//	for _, f := range feeds {
//	    fmt.Println(f.Kind(), f.URL())
//	}
//
// # Discovery
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//	service := discovery.NewService(deps, nil, discovery.Config{})
//	result, err := service.Discover(ctx, "https://example.com/blog/")
package core
