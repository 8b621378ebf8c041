package sslmcp

import "context"

// Embedder converts text into embedding vectors. Two variants exist
// (OpenAI and Ollama) and are selected at startup by configuration.
type Embedder interface {
	// EmbedDocuments embeds a batch of texts, one vector per text.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a single query string.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Index is a persistent associative store keyed by chunk ID. Writing an ID
// that already exists overwrites the previous entry.
type Index interface {
	// Upsert embeds and commits a batch of chunks atomically.
	// Returns EUNAVAILABLE if the store or the embedding provider cannot
	// be reached.
	Upsert(ctx context.Context, chunks []*Chunk) error

	// Search returns up to opts.K chunks ranked by descending relevance
	// to the query. Results below opts.Threshold are excluded, so fewer
	// than K results (including zero) may be returned.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)

	// Count returns the number of entries in the index.
	Count(ctx context.Context) (int, error)
}

// SearchOptions configures a similarity search.
type SearchOptions struct {
	// Maximum number of candidates to rank. Must be positive.
	K int `json:"k"`

	// Type restricts results to a single source type when set.
	Type *SourceType `json:"type,omitempty"`

	// Threshold excludes results scoring below it. Scores are normalized
	// to [0,1]; a threshold of 0 passes every candidate.
	Threshold float64 `json:"threshold,omitempty"`
}

// Validate returns an error if the options are unusable.
func (o SearchOptions) Validate() error {
	if o.K <= 0 {
		return Errorf(EINVALID, "search k must be positive")
	}
	if o.Threshold < 0 || o.Threshold > 1 {
		return Errorf(EINVALID, "search threshold must be in [0,1]")
	}
	if o.Type != nil && !o.Type.Valid() {
		return Errorf(EINVALID, "unknown source type filter %q", *o.Type)
	}
	return nil
}

// SearchResult pairs a chunk with its relevance score.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float64 `json:"score"`
}
