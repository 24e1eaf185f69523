package timeline

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// sanitizePolicy strips dangerous markup from status rich content before it
// is handed to API consumers
var sanitizePolicy = bluemonday.UGCPolicy()

// Sanitize cleans status rich-text HTML, keeping user-generated formatting
func Sanitize(richHTML string) string {
	return sanitizePolicy.Sanitize(richHTML)
}

// PlainText extracts the text content of status rich-text HTML, the
// equivalent of reading the parsed document's text nodes. Returns the
// trimmed concatenation; malformed markup degrades gracefully because the
// parser never fails on fragments.
func PlainText(richHTML string) string {
	doc, err := html.Parse(strings.NewReader(richHTML))
	if err != nil {
		return strings.TrimSpace(richHTML)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "br" || n.Data == "p") && sb.Len() > 0 {
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(strings.Join(strings.Fields(sb.String()), " "))
}
