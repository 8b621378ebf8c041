// Package ingest orchestrates the document-to-index pipeline: source URL
// discovery, page loading, chunking, deduplication, and token-budgeted
// batch upserts into the vector index.
package ingest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/smallsizeleague/sslmcp"
)

// Pipeline coordinates one ingestion run. It is stateless per call;
// persistent state lives entirely in the index.
type Pipeline struct {
	Sitemaps  sslmcp.SitemapService
	Loader    sslmcp.Loader
	Chunker   sslmcp.Chunker
	Index     sslmcp.Index
	Artifacts sslmcp.ArtifactWriter
	Logger    *slog.Logger

	// TokenBudget caps the summed token count per upsert batch.
	// Zero selects DefaultTokenBudget.
	TokenBudget int
}

// Report summarizes an ingestion run. Every run completes with a report;
// invalid and duplicate inputs are counted, never silently dropped.
type Report struct {
	RunID         string   `json:"runId"`
	Attempted     int      `json:"attempted"`
	Committed     int      `json:"committed"`
	Invalid       int      `json:"invalid"`
	Duplicates    int      `json:"duplicates"`
	FailedBatches int      `json:"failedBatches"`
	CommittedIDs  []string `json:"committedIds,omitempty"`
}

// Ratio returns the committed/attempted fraction, or 0 for an empty run.
func (r *Report) Ratio() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Committed) / float64(r.Attempted)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// UpdateSources discovers page URLs from the sitemap, merges them with the
// seed list, and writes the result to urlsPath when an artifact writer is
// configured. Seeds come first and the merge preserves first-seen order.
// The filter excludes blacklisted URLs from both lists.
func (p *Pipeline) UpdateSources(ctx context.Context, sitemapURL string, seeds []string, filter *sslmcp.URLFilter, urlsPath string) ([]string, error) {
	discovered, err := p.Sitemaps.DiscoverURLs(ctx, sitemapURL, filter)
	if err != nil {
		return nil, err
	}
	if len(discovered) == 0 {
		p.logger().Warn("no URLs extracted from sitemap", "sitemap", sitemapURL)
	}

	seen := make(map[string]struct{})
	var urls []string
	for _, u := range append(append([]string{}, seeds...), discovered...) {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		if !filter.Match(u) {
			continue
		}
		urls = append(urls, u)
	}

	p.logger().Info("updated website sources",
		"total", len(urls),
		"seeds", len(seeds),
		"discovered", len(discovered),
	)

	if urlsPath != "" && p.Artifacts != nil {
		if err := p.Artifacts.WriteURLList(urlsPath, urls); err != nil {
			return nil, err
		}
	}

	return urls, nil
}

// GenerateDocuments loads the given URLs, tags the resulting documents
// with the source type and reliability, optionally writes the full-text
// dump, and splits everything into chunks. A document that fails to split
// is skipped and logged, not fatal to the run.
func (p *Pipeline) GenerateDocuments(ctx context.Context, urls []string, typ sslmcp.SourceType, reliability float64, dumpPath string) ([]*sslmcp.Chunk, error) {
	if len(urls) == 0 {
		p.logger().Warn("no URLs provided", "type", string(typ))
		return nil, nil
	}

	// Drop duplicate URLs while preserving order.
	seen := make(map[string]struct{}, len(urls))
	unique := urls[:0:0]
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}

	docs, err := p.Loader.LoadAll(ctx, unique)
	if err != nil {
		return nil, err
	}

	totalTokens := 0
	for _, doc := range docs {
		doc.Type = typ
		doc.Reliability = reliability
		totalTokens += doc.TokenCount
	}
	p.logger().Info("loaded documents",
		"type", string(typ),
		"urls", len(unique),
		"documents", len(docs),
		"tokens", totalTokens,
	)

	if dumpPath != "" && p.Artifacts != nil {
		if err := p.Artifacts.WriteFullText(dumpPath, docs); err != nil {
			return nil, err
		}
	}

	var chunks []*sslmcp.Chunk
	for _, doc := range docs {
		split, err := p.Chunker.Split(ctx, doc)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			p.logger().Warn("skipping unsplittable document", "url", doc.SourceURL, "err", err)
			continue
		}
		chunks = append(chunks, split...)
	}

	p.logger().Info("split documents into chunks", "type", string(typ), "chunks", len(chunks))
	return chunks, nil
}

// UpdateIndex validates and deduplicates chunks, partitions them into
// token-budgeted batches, and commits the batches to the index
// sequentially and in order. A failed batch is recorded and the run
// continues with the next one; the run-level context is checked before
// each batch so cancellation never interrupts an in-flight commit.
func (p *Pipeline) UpdateIndex(ctx context.Context, chunks []*sslmcp.Chunk) (*Report, error) {
	report := &Report{RunID: uuid.New().String()}

	if len(chunks) == 0 {
		p.logger().Error("no chunks provided for index update", "run", report.RunID)
		return report, nil
	}

	valid := make([]*sslmcp.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			report.Invalid++
			p.logger().Debug("dropping invalid chunk", "id", c.ID, "err", err)
			continue
		}
		valid = append(valid, c)
	}
	if report.Invalid > 0 {
		p.logger().Warn("some chunks were invalid and will not be indexed",
			"total", len(chunks),
			"valid", len(valid),
		)
	}

	valid, dupes := sslmcp.DeduplicateChunks(valid)
	report.Duplicates = dupes
	if dupes > 0 {
		p.logger().Info("found duplicate chunks", "duplicates", dupes)
	}

	report.Attempted = len(valid)
	if report.Attempted == 0 {
		p.logger().Error("no valid chunks to index", "run", report.RunID)
		return report, nil
	}

	budget := p.TokenBudget
	if budget <= 0 {
		budget = DefaultTokenBudget
	}
	batches := PlanBatches(valid, budget)

	p.logger().Info("updating index",
		"run", report.RunID,
		"chunks", report.Attempted,
		"batches", len(batches),
		"budget", budget,
	)

	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			p.logger().Warn("run canceled before batch", "run", report.RunID, "batch", i)
			report.FailedBatches += len(batches) - i
			break
		}

		if err := p.Index.Upsert(ctx, batch.Chunks); err != nil {
			report.FailedBatches++
			p.logger().Error("batch commit failed",
				"run", report.RunID,
				"batch", i,
				"chunks", len(batch.Chunks),
				"err", err,
			)
			continue
		}

		report.Committed += len(batch.Chunks)
		for _, c := range batch.Chunks {
			report.CommittedIDs = append(report.CommittedIDs, c.ID)
		}
	}

	p.logger().Info("index update completed",
		"run", report.RunID,
		"committed", report.Committed,
		"attempted", report.Attempted,
		"ratio", report.Ratio(),
		"failed_batches", report.FailedBatches,
	)

	return report, nil
}
