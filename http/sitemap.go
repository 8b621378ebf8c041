package http

import (
	"context"
	"strings"

	"github.com/beevik/etree"

	"github.com/smallsizeleague/sslmcp"
)

var _ sslmcp.SitemapService = (*SitemapService)(nil)

// SitemapService extracts page URLs from a known sitemap URL. Sitemap
// indexes are followed recursively; nested urlsets contribute their URLs
// in document order.
type SitemapService struct {
	fetcher sslmcp.Fetcher
}

// NewSitemapService creates a SitemapService that fetches sitemaps with
// the given fetcher.
func NewSitemapService(fetcher sslmcp.Fetcher) *SitemapService {
	return &SitemapService{fetcher: fetcher}
}

// DiscoverURLs fetches the sitemap at sitemapURL and returns the page
// URLs it lists, in document order with duplicates dropped. URLs matching
// the filter's blacklist are excluded. A sitemap that yields no URLs is
// not an error; the caller decides how to treat an empty list.
func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string, filter *sslmcp.URLFilter) ([]string, error) {
	if sitemapURL == "" {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "sitemap URL required")
	}

	seenSitemaps := make(map[string]bool)
	urls, err := s.collect(ctx, sitemapURL, seenSitemaps)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(urls))
	result := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		if filter.Match(u) {
			result = append(result, u)
		}
	}

	return result, nil
}

// collect parses one sitemap document, recursing into nested sitemaps
// when the root element is a sitemapindex.
func (s *SitemapService) collect(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, el := range root.SelectElements("sitemap") {
			loc := locText(el)
			if loc == "" {
				continue
			}
			urls, err := s.collect(ctx, loc, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	var urls []string
	for _, el := range root.SelectElements("url") {
		if loc := locText(el); loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

func locText(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}
