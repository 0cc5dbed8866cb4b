package ingest

import (
	"strings"

	"golang.org/x/net/html"
)

// skipElements hold no readable document text.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// ExtractText returns the visible text of an HTML document. Text nodes are
// joined with a space so adjacent elements never fuse into one token.
// If parsing fails the input is returned unchanged.
func ExtractText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && skipElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return strings.TrimSpace(buf.String())
}
