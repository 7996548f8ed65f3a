// Package fetch pulls the source text for an analysis from a web page.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/corpix/uarand"
	"golang.org/x/net/html"
)

// Text downloads urlStr and returns the visible text of the page, suitable
// as extraction input. Script, style, and head content is skipped; block
// elements become line breaks.
func Text(ctx context.Context, client *http.Client, urlStr string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", uarand.GetRandom())

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("got non-OK status code: %v", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	visibleText(doc, &sb)
	return strings.TrimSpace(sb.String()), nil
}

var skipElements = map[string]struct{}{
	"script": {}, "style": {}, "head": {}, "noscript": {}, "template": {},
}

var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "section": {}, "article": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "blockquote": {},
}

func visibleText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		if _, skip := skipElements[n.Data]; skip {
			return
		}
		if _, block := blockElements[n.Data]; block {
			sb.WriteString("\n")
		}
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visibleText(c, sb)
	}
}
