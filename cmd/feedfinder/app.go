package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"feedfinder/core/detect"
	"feedfinder/core/discovery"
	"feedfinder/core/domain"
	"feedfinder/core/interfaces"
	stdhttp "feedfinder/infrastructure/http/standard"
	stdlogger "feedfinder/infrastructure/logger/standard"
)

type jsonOutput struct {
	URL     string        `json:"url"`
	BaseURL string        `json:"base_url"`
	Feeds   []domain.Feed `json:"feeds"`
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "feedfinder",
		Usage:     "List candidate RSS, Atom and JSON feeds for a web page.",
		UsageText: "curl -s URL | feedfinder URL\n   feedfinder --fetch URL",
		Version:   fmt.Sprintf("%s (%s)", version, commit),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fetch",
				Usage: "Fetch the page instead of reading HTML from stdin",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format (`text` or `json`)",
			},
			&cli.StringFlag{
				Name:    "policy",
				Aliases: []string{"p"},
				Value:   detect.FailFast.String(),
				Usage:   "What to do with an unresolvable candidate (`fail_fast` or `skip_invalid`)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 15 * time.Second,
				Usage: "Fetch timeout used with --fetch",
			},
			// -v belongs to the built-in --version flag
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log detection steps to stderr",
			},
		},
		Action: run,
	}

	return app
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Error: expected exactly one <url> argument", 1)
	}
	pageURL := c.Args().Get(0)

	format := c.String("format")
	if format != "text" && format != "json" {
		return cli.Exit(fmt.Sprintf("Error: Invalid output format '%s'. Use 'text' or 'json'.", format), 1)
	}

	policy, err := detect.ParseErrorPolicy(c.String("policy"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	level := "warn"
	if c.Bool("verbose") {
		level = "debug"
	}
	logger := stdlogger.NewStandardLogger(stdlogger.WithOutput(c.App.ErrWriter), stdlogger.WithLevel(level))

	deps := interfaces.Dependencies{Logger: logger}
	if c.Bool("fetch") {
		deps.HTTPClient = stdhttp.NewStandardHTTPClient(c.Duration("timeout"))
	}
	service := discovery.NewService(deps, detect.New(detect.WithErrorPolicy(policy), detect.WithLogger(logger)), discovery.Config{})

	var result *domain.DiscoveryResult
	if c.Bool("fetch") {
		result, err = service.Discover(c.Context, pageURL)
	} else {
		var html []byte
		html, err = io.ReadAll(c.App.Reader)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error reading HTML from stdin: %v", err), 1)
		}
		result, err = service.DetectHTML(pageURL, string(html))
	}
	if err != nil {
		return cli.Exit(color.New(color.FgRed).Sprintf("Unable to find feeds due to error: %v", err), 1)
	}

	if format == "json" {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonOutput{URL: result.URL, BaseURL: result.BaseURL, Feeds: result.Feeds})
	}

	printText(c.App.Writer, result)
	return nil
}

func printText(w io.Writer, result *domain.DiscoveryResult) {
	if len(result.Feeds) == 0 {
		color.New(color.FgYellow).Fprintf(w, "No feeds found for %s\n", result.URL)
		return
	}

	header := color.New(color.Bold)
	kindColor := color.New(color.FgCyan)

	header.Fprintf(w, "Possible feeds for %s\n", result.URL)
	for _, feed := range result.Feeds {
		fmt.Fprintf(w, "* %s %s\n", kindColor.Sprint(feed.Kind()), feed.URL())
	}
}
