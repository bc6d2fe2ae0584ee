// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - http/standard: net/http client with retry logic and redirect tracking
// - logger/standard: logrus-backed structured logger
//
// # HTTP Client
//
// The HTTP client retries 5xx responses and reports the URL it ended up at
// after redirects:
//
//	client := standard.NewStandardHTTPClient(15 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com/blog")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//	base := resp.FinalURL()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := standard.NewStandardLogger(standard.WithLevel("debug"), standard.WithFormat(standard.FormatJSON))
//	logger.Info("Discovered feeds", map[string]interface{}{
//	    "url":   "https://example.com/",
//	    "feeds": 2,
//	})
package infrastructure
