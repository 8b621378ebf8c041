package sslmcp

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Chunk represents a bounded slice of a document's text, the unit of
// indexing. Chunks are never mutated; re-ingesting changed content yields a
// different ID, superseding the old entry over time.
type Chunk struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	SourceURL   string     `json:"sourceUrl"`
	Type        SourceType `json:"type"`
	Reliability float64    `json:"reliability,omitempty"`
	TokenCount  int        `json:"tokenCount"`
}

// Validate returns an error if the chunk cannot be indexed.
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "chunk ID required")
	}
	if strings.TrimSpace(c.Text) == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	if c.SourceURL == "" {
		return Errorf(EINVALID, "chunk source URL required")
	}
	if !c.Type.Valid() {
		return Errorf(EINVALID, "chunk source type required")
	}
	return nil
}

// ChunkID derives the deterministic identifier for a chunk from its source
// type, source URL, and trimmed text. Identical content from the same
// source always produces the same ID; any change to text, source, or type
// produces a different one.
func ChunkID(typ SourceType, sourceURL, text string) string {
	sum := md5.Sum([]byte(string(typ) + "-" + sourceURL + "-" + strings.TrimSpace(text)))
	return "doc_" + hex.EncodeToString(sum[:])
}

// DeduplicateChunks collapses chunks sharing an ID, keeping the first
// occurrence in input order. The first occurrence wins because a page can
// arrive from multiple source lists and the earliest one determines the
// provenance metadata retained in the index. Returns the deduplicated
// slice and the number of duplicates dropped.
func DeduplicateChunks(chunks []*Chunk) ([]*Chunk, int) {
	seen := make(map[string]struct{}, len(chunks))
	unique := make([]*Chunk, 0, len(chunks))
	for _, c := range chunks {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		unique = append(unique, c)
	}
	return unique, len(chunks) - len(unique)
}

// Chunker splits a document into bounded, overlapping chunks with
// deterministic IDs and token counts. Chunks with empty trimmed text are
// discarded before being returned.
type Chunker interface {
	Split(ctx context.Context, doc *Document) ([]*Chunk, error)
}
