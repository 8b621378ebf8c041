package sslmcp

import (
	"context"
	"regexp"
	"strings"
)

// SitemapService discovers page URLs from a website sitemap.
type SitemapService interface {
	// DiscoverURLs fetches the sitemap at sitemapURL and returns the page
	// URLs it lists. Sitemap indexes are resolved recursively.
	//
	// The filter can be used to exclude URLs by pattern or substring.
	// If filter is nil, all URLs are returned.
	DiscoverURLs(ctx context.Context, sitemapURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for excluding URLs from a crawl.
type URLFilter struct {
	// Substrings excludes any URL containing one of these keywords.
	Substrings []string

	// Patterns excludes any URL matching one of these expressions.
	// Patterns are applied after Substrings.
	Patterns []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	for _, kw := range f.Substrings {
		if strings.Contains(url, kw) {
			return false
		}
	}

	for _, re := range f.Patterns {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
