package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedType(t *testing.T) {
	tests := []struct {
		input    string
		expected FeedType
		wantErr  bool
	}{
		{input: "home", expected: FeedHome},
		{input: "Trending", expected: FeedTrending},
		{input: " recommendation ", expected: FeedRecommendation},
		{input: "search_hashtags", expected: FeedSearchHashtags},
		{input: "bogus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFeedType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFeedMode_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		mode     FeedMode
		expected string
	}{
		{
			name:     "home timeline",
			mode:     FeedMode{Type: FeedHome},
			expected: "/api/v1/timelines/home",
		},
		{
			name:     "hashtag with modifier",
			mode:     FeedMode{Type: FeedHashtag, Modifier: "golang"},
			expected: "/api/v1/timelines/tag/golang",
		},
		{
			name:     "account statuses",
			mode:     FeedMode{Type: FeedAccount, Modifier: "12345"},
			expected: "/api/v1/accounts/12345/statuses",
		},
		{
			name:     "search carries query",
			mode:     FeedMode{Type: FeedSearch, Modifier: "cats"},
			expected: "/api/v2/search?q=cats&type=statuses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.Endpoint())
		})
	}
}

func TestFeedMode_UsesOffset(t *testing.T) {
	assert.True(t, FeedMode{Type: FeedTrending}.UsesOffset())
	assert.False(t, FeedMode{Type: FeedHome}.UsesOffset())
	assert.False(t, FeedMode{Type: FeedRecommendation}.UsesOffset(), "recommendation pages by max_id despite sharing the trending endpoint")
}
