package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/smallsizeleague/sslmcp"
	"github.com/smallsizeleague/sslmcp/bloom"
)

// Defaults for the recursive loader.
const (
	DefaultMaxDepth    = 3
	DefaultConcurrency = 5

	// expectedURLs sizes the per-run seen-set.
	expectedURLs = 50000
	seenFPRate   = 0.001
)

var _ sslmcp.Loader = (*Loader)(nil)

// Loader fetches pages for a list of seed URLs and follows same-host links
// up to MaxDepth levels. Each level is fetched concurrently; result order
// is deterministic regardless of which fetch finishes first. Pages that
// fail to fetch or extract are logged and skipped.
type Loader struct {
	Fetcher   sslmcp.Fetcher
	Extractor sslmcp.Extractor
	Limiter   sslmcp.DomainLimiter
	Counter   sslmcp.TokenCounter
	Logger    *slog.Logger

	// MaxDepth is the number of link-following levels, counting the
	// seeds as level 1. Zero selects DefaultMaxDepth.
	MaxDepth int

	// Concurrency bounds in-flight fetches. Zero selects
	// DefaultConcurrency.
	Concurrency int
}

type page struct {
	doc   *sslmcp.Document
	links []string
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// LoadAll fetches every URL and the same-host pages reachable from them
// within MaxDepth levels. Seed documents come first in input order; pages
// discovered at deeper levels follow, each level in the order its links
// appeared. A URL is fetched at most once per call.
func (l *Loader) LoadAll(ctx context.Context, urls []string) ([]*sslmcp.Document, error) {
	maxDepth := l.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	seen := bloom.NewSeenSet(expectedURLs, seenFPRate)
	var level []string
	for _, u := range urls {
		if seen.MarkSeen(u) {
			level = append(level, u)
		}
	}

	var docs []*sslmcp.Document
	for depth := 1; depth <= maxDepth && len(level) > 0; depth++ {
		pages, err := l.loadLevel(ctx, level)
		if err != nil {
			return nil, err
		}

		var next []string
		for _, p := range pages {
			if p == nil {
				continue
			}
			if p.doc != nil {
				docs = append(docs, p.doc)
			}
			if depth == maxDepth {
				continue
			}
			for _, link := range p.links {
				if !sameHost(p.doc.SourceURL, link) {
					continue
				}
				if seen.MarkSeen(link) {
					next = append(next, link)
				}
			}
		}

		l.logger().Debug("loaded level",
			"depth", depth,
			"pages", len(level),
			"documents", len(docs),
			"next", len(next),
		)
		level = next
	}

	return docs, nil
}

// loadLevel fetches one level of URLs concurrently. The returned slice is
// indexed by input position; failed pages leave a nil entry.
func (l *Loader) loadLevel(ctx context.Context, urls []string) ([]*page, error) {
	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*page, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			p, err := l.loadPage(ctx, u)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				l.logger().Warn("skipping page", "url", u, "err", err)
				return nil
			}
			pages[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (l *Loader) loadPage(ctx context.Context, pageURL string) (*page, error) {
	if l.Limiter != nil {
		host, err := hostOf(pageURL)
		if err != nil {
			return nil, err
		}
		if err := l.Limiter.Wait(ctx, host); err != nil {
			return nil, err
		}
	}

	html, err := l.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extracted, err := l.Extractor.Extract(html, pageURL)
	if err != nil {
		return nil, err
	}

	doc := &sslmcp.Document{
		Text:        extracted.Text,
		SourceURL:   pageURL,
		ContentHash: contentHash(extracted.Text),
	}
	if l.Counter != nil {
		tokens, err := l.Counter.CountTokens(ctx, extracted.Text)
		if err != nil {
			return nil, err
		}
		doc.TokenCount = tokens
	}

	return &page{doc: doc, links: extracted.Links}, nil
}

func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

func hostOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sslmcp.Errorf(sslmcp.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return u.Hostname(), nil
}

func sameHost(a, b string) bool {
	ha, err := hostOf(a)
	if err != nil {
		return false
	}
	hb, err := hostOf(b)
	if err != nil {
		return false
	}
	return ha == hb
}
