// Package source resolves a worksheet's source text, fetching and
// extracting readable content from a URL when no pasted text was given.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// maxSourceChars caps extracted source text before it reaches the generator.
const maxSourceChars = 12000

const userAgent = "Aontas/1.0"

// Fetcher downloads pages and extracts their readable text.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher with a bounded request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// FetchExtract downloads a page and returns its readable text, preferring
// the <article> element when one exists and skipping script, style, and
// page-chrome elements. The result is whitespace-collapsed and capped at
// maxSourceChars.
func (f *Fetcher) FetchExtract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building source request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching source URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching source URL: unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("parsing source page: %w", err)
	}

	text := Extract(doc)
	if text == "" {
		return "", fmt.Errorf("no usable source text at %s; the site may block extraction, try pasting the text", url)
	}
	return text, nil
}

// Extract pulls readable text out of a parsed document.
func Extract(doc *html.Node) string {
	root := findElement(doc, "article")
	if root == nil {
		root = findElement(doc, "body")
	}
	if root == nil {
		root = doc
	}

	var sb strings.Builder
	collectText(root, &sb)

	text := strings.Join(strings.Fields(sb.String()), " ")
	if runes := []rune(text); len(runes) > maxSourceChars {
		text = string(runes[:maxSourceChars])
	}
	return text
}

// skipElements are containers whose text is page chrome, not content.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"noscript": true,
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && skipElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}
