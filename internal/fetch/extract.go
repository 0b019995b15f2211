package fetch

import (
	"strings"

	"golang.org/x/net/html"
)

// extractText parses HTML and returns the document title and visible
// body text with collapsed whitespace. Script, style, and template
// content is skipped. Malformed HTML degrades gracefully: the parser
// never fails on real-world pages.
func extractText(rawHTML string) (title string, text string) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		case html.TextNode:
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(trimmed)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title, b.String()
}
