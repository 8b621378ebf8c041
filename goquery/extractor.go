// Package goquery extracts main content and links from HTML pages.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/smallsizeleague/sslmcp"
)

var _ sslmcp.Extractor = (*Extractor)(nil)

// Extractor pulls readable text out of HTML pages. It strips scripts,
// styles, and comments, then takes the first matching content region in
// preference order: the published-page article wrapper used by the league
// WordPress theme, then main, article, section, and finally body.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// contentSelectors in preference order. The first selector that yields a
// non-empty text wins.
var contentSelectors = []string{
	"article.status-publish",
	"main",
	"article",
	"section",
	"body",
}

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{2,}`)
)

// Extract returns the page's main content as plain text together with the
// absolute same-document links found anywhere in the body. A page with no
// recognizable content yields empty text, not an error.
func (e *Extractor) Extract(rawHTML, baseURL string) (*sslmcp.ExtractResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "failed to parse HTML: %v", err)
	}

	links := extractLinks(doc, base)

	doc.Find("script, style, noscript, template").Remove()

	var text string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text = collapseWhitespace(textContent(sel))
		if text != "" {
			break
		}
	}

	return &sslmcp.ExtractResult{Text: text, Links: links}, nil
}

// textContent walks the selection's nodes collecting text with newline
// separators between nodes, close to how a browser would render plain
// text line breaks. Comment nodes are ignored.
func textContent(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		walkText(node, &sb)
	}
	return sb.String()
}

func walkText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			sb.WriteString(t)
			sb.WriteByte('\n')
		}
		return
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, sb)
	}
}

// collapseWhitespace squeezes tab and space runs into single spaces and
// blank-line runs into single newlines.
func collapseWhitespace(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// extractLinks returns the absolute form of every anchor href in the
// document, in document order, deduplicated with fragments stripped.
// Non-HTTP schemes and self-references are dropped.
func extractLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links
}

// resolveURL resolves href against base, strips the fragment, and drops
// self-referential results.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
