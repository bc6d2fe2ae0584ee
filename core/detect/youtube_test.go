package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedfinder/core/domain"
)

func TestYouTube(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"channel", "https://www.youtube.com/channel/UCxxxx", "https://www.youtube.com/feeds/videos.xml?channel_id=UCxxxx"},
		{"channel subpage", "https://www.youtube.com/channel/UCxxxx/videos", "https://www.youtube.com/feeds/videos.xml?channel_id=UCxxxx"},
		{"user", "https://www.youtube.com/user/someone", "https://www.youtube.com/feeds/videos.xml?user=someone"},
		{"playlist", "https://www.youtube.com/playlist?list=PL123", "https://www.youtube.com/feeds/videos.xml?playlist_id=PL123"},
		{"watch with playlist", "https://www.youtube.com/watch?v=abc&list=XYZ", "https://www.youtube.com/feeds/videos.xml?playlist_id=XYZ"},
		{"bare host", "https://youtube.com/channel/UC1", "https://www.youtube.com/feeds/videos.xml?channel_id=UC1"},
		{"mobile host", "https://m.youtube.com/user/abc", "https://www.youtube.com/feeds/videos.xml?user=abc"},
		{"id is escaped", "https://www.youtube.com/playlist?list=a%26b", "https://www.youtube.com/feeds/videos.xml?playlist_id=a%26b"},
		{"encoded slash stays in id", "https://www.youtube.com/channel/UC%2Fx", "https://www.youtube.com/feeds/videos.xml?channel_id=UC%2Fx"},
		{"encoded space in user", "https://www.youtube.com/user/some%20one", "https://www.youtube.com/feeds/videos.xml?user=some+one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feeds, err := runStrategy(t, youtube, tt.base, "")
			require.NoError(t, err)
			assert.Equal(t, []domain.Feed{domain.NewFeed(tt.want, domain.KindAtom)}, feeds)
		})
	}
}

func TestYouTube_NoFeed(t *testing.T) {
	tests := []struct {
		name string
		base string
	}{
		{"channel without id", "https://www.youtube.com/channel/"},
		{"channel segment only", "https://www.youtube.com/channel"},
		{"user without id", "https://www.youtube.com/user/"},
		{"playlist without list", "https://www.youtube.com/playlist?foo=bar"},
		{"watch without list", "https://www.youtube.com/watch?v=abc"},
		{"home page", "https://www.youtube.com/"},
		{"other page", "https://www.youtube.com/results?search_query=go"},
		{"other host", "https://example.com/channel/UCxxxx"},
		{"lookalike host", "https://notyoutube.com/channel/UCxxxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feeds, err := runStrategy(t, youtube, tt.base, "")
			require.NoError(t, err)
			assert.Empty(t, feeds)
		})
	}
}

func TestYouTube_IgnoresMarkup(t *testing.T) {
	html := `<link rel="alternate" type="application/rss+xml" href="/ignored">`

	feeds, err := runStrategy(t, youtube, "https://www.youtube.com/channel/UC9", html)
	require.NoError(t, err)
	assert.Equal(t, []domain.Feed{
		domain.NewFeed("https://www.youtube.com/feeds/videos.xml?channel_id=UC9", domain.KindAtom),
	}, feeds)
}
