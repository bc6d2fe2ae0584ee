package urlresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"absolute", "https://example.com/a?b=c", "https://example.com/a?b=c", false},
		{"surrounding whitespace", "  http://example.com/  ", "http://example.com/", false},
		{"newline inside", "https://exam\nple.com/a\r\n/b", "https://example.com/a/b", false},
		{"relative path", "/feed.rss", "", true},
		{"no host", "mailto:someone@example.com", "", true},
		{"bad escape", "http://example.com/%zz", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		reference string
		want      string
	}{
		{"root relative", "http://example.com/", "/feed.rss", "http://example.com/feed.rss"},
		{"dot relative", "http://example.com/", "./rss", "http://example.com/rss"},
		{"bare relative", "http://example.com/blog/post", "atom.xml", "http://example.com/blog/atom.xml"},
		{"bare relative under directory", "http://example.com/blog/", "atom.xml", "http://example.com/blog/atom.xml"},
		{"parent relative", "http://example.com/blog/post/", "../feed", "http://example.com/blog/feed"},
		{"absolute ignores base", "http://example.com/", "https://other.org/feed.json", "https://other.org/feed.json"},
		{"scheme relative", "https://example.com/", "//cdn.example.com/feed", "https://cdn.example.com/feed"},
		{"query only", "http://example.com/page?x=1", "?format=rss", "http://example.com/page?format=rss"},
		{"trimmed", "http://example.com/", " /feed ", "http://example.com/feed"},
		{"newline inside", "http://example.com/", "/fe\ned.xml", "http://example.com/feed.xml"},
		{"tab inside", "http://example.com/blog/", "at\tom.xml", "http://example.com/blog/atom.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := Parse(tt.base)
			require.NoError(t, err)

			got, err := Join(base, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestJoin_Errors(t *testing.T) {
	base, err := Parse("http://example.com/")
	require.NoError(t, err)

	_, err = Join(base, "http://[::1")
	assert.Error(t, err)

	_, err = Join(base, "/%zz")
	assert.Error(t, err)

	_, err = Join(nil, "/feed")
	assert.ErrorIs(t, err, ErrNotAbsolute)
}
