package sqlite

import (
	"context"
	"sort"
	"time"

	"github.com/smallsizeleague/sslmcp"
)

// Compile-time interface verification.
var _ sslmcp.Index = (*Index)(nil)

// Index implements sslmcp.Index on a SQLite collection. Embeddings are
// computed on upsert via the injected embedder and stored alongside the
// chunk; searches embed the query and rank candidates by cosine similarity
// in process.
type Index struct {
	db       *DB
	embedder sslmcp.Embedder
}

// NewIndex creates a new Index.
func NewIndex(db *DB, embedder sslmcp.Embedder) *Index {
	return &Index{db: db, embedder: embedder}
}

// Upsert embeds and commits a batch of chunks in one transaction. Writing
// an ID that already exists overwrites the previous entry, so re-ingesting
// the same chunk set is idempotent.
func (ix *Index) Upsert(ctx context.Context, chunks []*sslmcp.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := ix.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(chunks) {
		return sslmcp.Errorf(sslmcp.EINTERNAL, "embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	tx, err := ix.db.BeginTx(ctx)
	if err != nil {
		return sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, c := range chunks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, text, source_url, source_type, reliability, token_count, embedding, indexed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				text = excluded.text,
				source_url = excluded.source_url,
				source_type = excluded.source_type,
				reliability = excluded.reliability,
				token_count = excluded.token_count,
				embedding = excluded.embedding,
				indexed_at = excluded.indexed_at
		`, c.ID, c.Text, c.SourceURL, string(c.Type), c.Reliability, c.TokenCount, encodeVector(vectors[i]), now)
		if err != nil {
			return sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to upsert chunk %s: %v", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to commit batch: %v", err)
	}
	return nil
}

// Search embeds the query and returns up to opts.K chunks ranked by
// descending relevance, excluding results below opts.Threshold. Scores
// are cosine similarity normalized to [0,1].
func (ix *Index) Search(ctx context.Context, query string, opts sslmcp.SearchOptions) ([]sslmcp.SearchResult, error) {
	if query == "" {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "search query required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	qvec, err := ix.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	sqlQuery := "SELECT id, text, source_url, source_type, reliability, token_count, embedding FROM chunks"
	var args []any
	if opts.Type != nil {
		sqlQuery += " WHERE source_type = ?"
		args = append(args, string(*opts.Type))
	}

	rows, err := ix.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to query index: %v", err)
	}
	defer rows.Close()

	var results []sslmcp.SearchResult
	for rows.Next() {
		var chunk sslmcp.Chunk
		var typ string
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Text, &chunk.SourceURL, &typ, &chunk.Reliability, &chunk.TokenCount, &blob); err != nil {
			return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to scan chunk: %v", err)
		}
		chunk.Type = sslmcp.SourceType(typ)

		score := relevance(qvec, decodeVector(blob))
		results = append(results, sslmcp.SearchResult{Chunk: &chunk, Score: score})
	}
	if err := rows.Err(); err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to read index: %v", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > opts.K {
		results = results[:opts.K]
	}

	// Threshold applies after top-k, so fewer than K results may remain.
	filtered := results[:0]
	for _, r := range results {
		if r.Score >= opts.Threshold {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}

// Count returns the number of entries in the index.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := ix.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&n); err != nil {
		return 0, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "failed to count chunks: %v", err)
	}
	return n, nil
}
