// Package mock provides function-field mock implementations of sslmcp
// interfaces for testing.
package mock

import (
	"context"

	"github.com/smallsizeleague/sslmcp"
)

var _ sslmcp.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of sslmcp.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn     func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedDocumentsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedQueryFn(ctx, text)
}

var _ sslmcp.Index = (*Index)(nil)

// Index is a mock implementation of sslmcp.Index.
type Index struct {
	UpsertFn func(ctx context.Context, chunks []*sslmcp.Chunk) error
	SearchFn func(ctx context.Context, query string, opts sslmcp.SearchOptions) ([]sslmcp.SearchResult, error)
	CountFn  func(ctx context.Context) (int, error)
}

func (ix *Index) Upsert(ctx context.Context, chunks []*sslmcp.Chunk) error {
	return ix.UpsertFn(ctx, chunks)
}

func (ix *Index) Search(ctx context.Context, query string, opts sslmcp.SearchOptions) ([]sslmcp.SearchResult, error) {
	return ix.SearchFn(ctx, query, opts)
}

func (ix *Index) Count(ctx context.Context) (int, error) {
	return ix.CountFn(ctx)
}

var _ sslmcp.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of sslmcp.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
	LenFn         func(text string) int
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

func (tc *TokenCounter) Len(text string) int {
	return tc.LenFn(text)
}

var _ sslmcp.Chunker = (*Chunker)(nil)

// Chunker is a mock implementation of sslmcp.Chunker.
type Chunker struct {
	SplitFn func(ctx context.Context, doc *sslmcp.Document) ([]*sslmcp.Chunk, error)
}

func (c *Chunker) Split(ctx context.Context, doc *sslmcp.Document) ([]*sslmcp.Chunk, error) {
	return c.SplitFn(ctx, doc)
}

var _ sslmcp.Loader = (*Loader)(nil)

// Loader is a mock implementation of sslmcp.Loader.
type Loader struct {
	LoadAllFn func(ctx context.Context, urls []string) ([]*sslmcp.Document, error)
}

func (l *Loader) LoadAll(ctx context.Context, urls []string) ([]*sslmcp.Document, error) {
	return l.LoadAllFn(ctx, urls)
}

var _ sslmcp.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of sslmcp.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, sitemapURL string, filter *sslmcp.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string, filter *sslmcp.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, sitemapURL, filter)
}

var _ sslmcp.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sslmcp.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ sslmcp.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sslmcp.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string) (*sslmcp.ExtractResult, error)
}

func (e *Extractor) Extract(html, baseURL string) (*sslmcp.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}

var _ sslmcp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sslmcp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}

var _ sslmcp.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of sslmcp.ArtifactWriter.
type ArtifactWriter struct {
	WriteURLListFn  func(path string, urls []string) error
	WriteFullTextFn func(path string, docs []*sslmcp.Document) error
}

func (w *ArtifactWriter) WriteURLList(path string, urls []string) error {
	return w.WriteURLListFn(path, urls)
}

func (w *ArtifactWriter) WriteFullText(path string, docs []*sslmcp.Document) error {
	return w.WriteFullTextFn(path, docs)
}

var _ sslmcp.TDPService = (*TDPService)(nil)

// TDPService is a mock implementation of sslmcp.TDPService.
type TDPService struct {
	SearchFn func(ctx context.Context, query string, paragraphs int) (*sslmcp.TDPResult, error)
}

func (s *TDPService) Search(ctx context.Context, query string, paragraphs int) (*sslmcp.TDPResult, error) {
	return s.SearchFn(ctx, query, paragraphs)
}
