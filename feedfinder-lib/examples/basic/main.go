// ABOUTME: Basic example showing feed detection with the FeedFinder library
// ABOUTME: Detects feeds in inline HTML, then fetches a live page with a configured client

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	feedfinder "feedfinder/feedfinder-lib"
)

const page = `
<html>
	<head>
		<title>Example</title>
		<link rel="alternate" href="/posts.rss" type="application/rss+xml" />
	</head>
	<body>
		My fun page with a feed.
	</body>
</html>`

func main() {
	// Detection over HTML the caller already has
	pageURL := "https://example.com/example"
	feeds, err := feedfinder.Detect(pageURL, page)
	if err != nil {
		fmt.Printf("Unable to find feeds due to error: %v\n", err)
	} else {
		fmt.Printf("Possible feeds for %s:\n", pageURL)
		for _, feed := range feeds {
			fmt.Printf("* %s %s\n", feed.Kind, feed.URL)
		}
	}

	// Fetch-then-detect with a quiet, lenient client
	client, err := feedfinder.NewClient(
		feedfinder.WithTimeout(10*time.Second),
		feedfinder.WithErrorPolicy(feedfinder.SkipInvalid),
		feedfinder.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("\n=== Discovering Live Pages ===")
	for _, r := range client.DiscoverAll(ctx, []string{
		"https://go.dev/blog/",
		"https://www.youtube.com/channel/UCK8sQmJBp8GCxrOtXWBpyEA",
	}) {
		if r.Err != nil {
			fmt.Printf("%s: %v\n", r.URL, r.Err)
			continue
		}
		fmt.Printf("%s: %d candidate(s)\n", r.URL, len(r.Feeds))
		for _, feed := range r.Feeds {
			fmt.Printf("  * %s %s\n", feed.Kind, feed.URL)
		}
	}
}
