package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const examplePage = `<html><head>
	<title>Example</title>
	<link rel="alternate" href="/posts.rss" type="application/rss+xml" />
</head><body>My fun page with a feed.</body></html>`

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"feedfinder"}, args...))
	return stdout.String(), stderr.String(), err
}

func exitCode(err error) int {
	if coder, ok := err.(cli.ExitCoder); ok {
		return coder.ExitCode()
	}
	return -1
}

func TestRun_TextFromStdin(t *testing.T) {
	out, _, err := runApp(t, examplePage, "https://example.com/example")
	require.NoError(t, err)

	assert.Equal(t, "Possible feeds for https://example.com/example\n* rss https://example.com/posts.rss\n", out)
}

func TestRun_JSONFromStdin(t *testing.T) {
	out, _, err := runApp(t, examplePage, "--format", "json", "https://example.com/example")
	require.NoError(t, err)

	var got struct {
		URL   string `json:"url"`
		Feeds []struct {
			URL  string `json:"url"`
			Kind string `json:"kind"`
		} `json:"feeds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "https://example.com/example", got.URL)
	require.Len(t, got.Feeds, 1)
	assert.Equal(t, "https://example.com/posts.rss", got.Feeds[0].URL)
	assert.Equal(t, "rss", got.Feeds[0].Kind)
}

func TestRun_NoFeeds(t *testing.T) {
	out, _, err := runApp(t, "<p>nothing here</p>", "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, "No feeds found for https://example.com/\n", out)
}

func TestRun_DetectionErrorExitsOne(t *testing.T) {
	page := `<link rel="alternate" type="application/rss+xml" href="http://[::1">`

	_, _, err := runApp(t, page, "https://example.com/")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "Unable to find feeds due to error")

	out, _, err := runApp(t, page, "--policy", "skip_invalid", "https://example.com/")
	require.NoError(t, err)
	assert.Contains(t, out, "No feeds found")
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing url", nil},
		{"two urls", []string{"https://a.example/", "https://b.example/"}},
		{"bad format", []string{"--format", "xml", "https://example.com/"}},
		{"bad policy", []string{"--policy", "ignore", "https://example.com/"}},
		{"relative url", []string{"/relative"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runApp(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(err))
		})
	}
}

func TestRun_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<body><a href="/blog/atom.xml">Subscribe</a></body>`))
	}))
	defer server.Close()

	out, _, err := runApp(t, "", "--fetch", server.URL+"/")
	require.NoError(t, err)

	assert.Contains(t, out, "Possible feeds for "+server.URL+"/")
	assert.Contains(t, out, "* link "+server.URL+"/blog/atom.xml")
}

func TestRun_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := runApp(t, "", "--fetch", server.URL+"/")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "status 404")
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	_, stderr, err := runApp(t, examplePage, "--verbose", "https://example.com/example")
	require.NoError(t, err)

	assert.NotEmpty(t, stderr)
}

func TestRun_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			out, _, err := runApp(t, "", flag)
			require.NoError(t, err)
			assert.Equal(t, "feedfinder version development (n/a)\n", out)
		})
	}
}
