package domain

import "time"

// Author describes the poster of a status
type Author struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar_static"`
}

// MediaAttachment describes a media descriptor attached to a status
type MediaAttachment struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	PreviewURL string `json:"preview_url"`
}

// Status represents a single feed item as returned by the upstream API.
// Enrichment jobs mutate it in place: PlainText is derived once after fetch,
// Comments and DetectedLanguage are filled by the queue lanes.
type Status struct {
	ID              string            `json:"id"`
	Account         Author            `json:"account"`
	Content         string            `json:"content"` // raw rich-text (HTML)
	CreatedAt       time.Time         `json:"created_at"`
	FavouritesCount int               `json:"favourites_count"`
	Favourited      bool              `json:"favourited"`
	Language        string            `json:"language,omitempty"`
	Tags            []Tag             `json:"tags,omitempty"`
	Media           []MediaAttachment `json:"media_attachments,omitempty"`

	// derived and enriched fields, not part of the upstream payload
	PlainText        string   `json:"plain_text,omitempty"`
	DetectedLanguage string   `json:"detected_language,omitempty"`
	Comments         []Status `json:"comments,omitempty"`
	CommentsFetched  bool     `json:"comments_fetched,omitempty"`
}

// Tag is a hashtag reference on a status
type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Account holds a stored user account with its interest topics.
// Topics are free-text interest strings, ordered, capped at MaxTopics.
type Account struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	AccountName string    `json:"account_name"`
	Avatar      string    `json:"avatar"`
	Token       string    `json:"-"`
	Instance    string    `json:"instance"`
	IsActive    bool      `json:"is_active"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MaxTopics caps the number of interest topics per account
const MaxTopics = 20
