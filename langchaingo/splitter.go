// Package langchaingo provides text splitting and embedding implementations
// backed by the langchaingo library.
package langchaingo

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallsizeleague/sslmcp"
	"github.com/tmc/langchaingo/textsplitter"
)

// Default chunking parameters, measured in tokens. The large chunk size
// keeps comprehensive context per chunk; the overlap preserves continuity
// across chunk boundaries.
const (
	DefaultChunkSize    = 8000
	DefaultChunkOverlap = 500
)

var _ sslmcp.Chunker = (*Chunker)(nil)

// Chunker splits documents into token-bounded chunks using a recursive
// character splitter that prefers paragraph and sentence boundaries before
// falling back to character-level splits.
type Chunker struct {
	counter   sslmcp.TokenCounter
	chunkSize int
	overlap   int
}

// ChunkerOption configures a Chunker.
type ChunkerOption func(*Chunker)

// WithChunkSize sets the target chunk size in tokens.
func WithChunkSize(n int) ChunkerOption {
	return func(c *Chunker) { c.chunkSize = n }
}

// WithChunkOverlap sets the overlap between adjacent chunks in tokens.
func WithChunkOverlap(n int) ChunkerOption {
	return func(c *Chunker) { c.overlap = n }
}

// NewChunker creates a Chunker that measures length with the given token
// counter.
func NewChunker(counter sslmcp.TokenCounter, opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		counter:   counter,
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Split splits a document into chunks with deterministic IDs and token
// counts. Chunks with empty trimmed text are discarded.
func (c *Chunker) Split(ctx context.Context, doc *sslmcp.Document) ([]*sslmcp.Chunk, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(c.chunkSize),
		textsplitter.WithChunkOverlap(c.overlap),
		textsplitter.WithLenFunc(c.counter.Len),
	)

	segments, err := splitter.SplitText(doc.Text)
	if err != nil {
		return nil, fmt.Errorf("split document %s: %w", doc.SourceURL, err)
	}

	chunks := make([]*sslmcp.Chunk, 0, len(segments))
	for _, segment := range segments {
		text := strings.TrimSpace(segment)
		if text == "" {
			continue
		}
		chunks = append(chunks, &sslmcp.Chunk{
			ID:          sslmcp.ChunkID(doc.Type, doc.SourceURL, text),
			Text:        text,
			SourceURL:   doc.SourceURL,
			Type:        doc.Type,
			Reliability: doc.Reliability,
			TokenCount:  c.counter.Len(text),
		})
	}

	return chunks, nil
}
