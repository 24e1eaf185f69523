package domain

import (
	"fmt"
	"strings"
)

// FeedType identifies the source timeline for a feed session
type FeedType string

// supported feed types
const (
	FeedHome           FeedType = "home"
	FeedTrending       FeedType = "trending"
	FeedRecommendation FeedType = "recommendation"
	FeedHashtag        FeedType = "hashtag"
	FeedAccount        FeedType = "account"
	FeedSearch         FeedType = "search"
	FeedSearchHashtags FeedType = "search_hashtags"
)

// FeedMode selects the upstream endpoint and pagination strategy.
// Modifier carries the hashtag name, account id or search term for the
// parameterized feed types.
type FeedMode struct {
	Type     FeedType
	Modifier string
}

// endpoint templates per feed type, {0} replaced by the mode modifier
var endpointTemplates = map[FeedType]string{
	FeedHome:           "/api/v1/timelines/home",
	FeedTrending:       "/api/v1/trends/statuses",
	FeedRecommendation: "/api/v1/trends/statuses",
	FeedHashtag:        "/api/v1/timelines/tag/{0}",
	FeedAccount:        "/api/v1/accounts/{0}/statuses",
	FeedSearch:         "/api/v2/search?q={0}&type=statuses",
	FeedSearchHashtags: "/api/v2/search?q={0}&type=hashtags",
}

// ParseFeedType converts a string to a FeedType, failing on unknown values
func ParseFeedType(s string) (FeedType, error) {
	ft := FeedType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := endpointTemplates[ft]; !ok {
		return "", fmt.Errorf("unknown feed type %q", s)
	}
	return ft, nil
}

// Endpoint returns the API path for the mode, with the modifier substituted
func (m FeedMode) Endpoint() string {
	tmpl := endpointTemplates[m.Type]
	if m.Modifier != "" {
		return strings.ReplaceAll(tmpl, "{0}", m.Modifier)
	}
	return tmpl
}

// UsesOffset reports whether the mode paginates with an offset cursor
// instead of a max_id cursor. Only the trending timeline pages by offset.
func (m FeedMode) UsesOffset() bool {
	return m.Type == FeedTrending
}
