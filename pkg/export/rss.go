// Package export renders the currently loaded feed as RSS 2.0.
package export

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/nebulink/nebulink/pkg/domain"
)

// Generator creates RSS documents from feed statuses
type Generator struct {
	baseURL  string
	instance string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL, instance string) *Generator {
	return &Generator{
		baseURL:  strings.TrimRight(baseURL, "/"),
		instance: strings.TrimRight(instance, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from the loaded statuses
func (g *Generator) GenerateRSS(statuses []*domain.Status, mode domain.FeedMode) (string, error) {
	title := fmt.Sprintf("Nebulink - %s", mode.Type)
	if mode.Modifier != "" {
		title = fmt.Sprintf("Nebulink - %s (%s)", mode.Type, mode.Modifier)
	}

	rssItems := make([]*RSSItem, 0, len(statuses))
	for _, s := range statuses {
		rssItems = append(rssItems, g.convertToRSSItem(s))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Feed snapshot from %s", g.instance),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a status to an RSS item
func (g *Generator) convertToRSSItem(s *domain.Status) *RSSItem {
	title := s.PlainText
	if runes := []rune(title); len(runes) > 80 {
		title = string(runes[:80]) + "..."
	}
	if title == "" {
		title = fmt.Sprintf("Status %s", s.ID)
	}

	categories := make([]string, 0, len(s.Tags))
	for _, tag := range s.Tags {
		categories = append(categories, tag.Name)
	}

	return &RSSItem{
		Title:       title,
		Link:        fmt.Sprintf("%s/@%s/%s", g.instance, s.Account.Acct, s.ID),
		GUID:        s.ID,
		Description: s.Content,
		Author:      s.Account.Acct,
		PubDate:     s.CreatedAt.Format(time.RFC1123Z),
		Categories:  categories,
	}
}
