package ingest

import (
	"context"

	"github.com/smallsizeleague/sslmcp"
)

// RunConfig describes a full ingestion run over the three source lists.
type RunConfig struct {
	SitemapURL   string
	WebsiteSeeds []string
	RulesURLs    []string
	RepoURLs     []string
	Filter       *sslmcp.URLFilter

	// Artifact paths; empty paths skip the corresponding artifact.
	URLsPath     string
	WebsitePath  string
	RulesPath    string
	RepoPath     string
}

// Reliability weights per source. Rules pages are authoritative; general
// website pages less so. Repository listings carry no weight.
const (
	websiteReliability = 0.6
	rulesReliability   = 1.0
)

// RunAll executes the full update process: refresh the source URL list,
// load and chunk every source type, and commit everything to the index in
// one run so cross-source duplicates collapse to a single entry.
func (p *Pipeline) RunAll(ctx context.Context, cfg RunConfig) (*Report, error) {
	websiteURLs, err := p.UpdateSources(ctx, cfg.SitemapURL, cfg.WebsiteSeeds, cfg.Filter, cfg.URLsPath)
	if err != nil {
		return nil, err
	}

	website, err := p.GenerateDocuments(ctx, websiteURLs, sslmcp.SourceWebsite, websiteReliability, cfg.WebsitePath)
	if err != nil {
		return nil, err
	}

	rules, err := p.GenerateDocuments(ctx, cfg.RulesURLs, sslmcp.SourceRules, rulesReliability, cfg.RulesPath)
	if err != nil {
		return nil, err
	}

	repos, err := p.GenerateDocuments(ctx, cfg.RepoURLs, sslmcp.SourceRepository, 0, cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	all := make([]*sslmcp.Chunk, 0, len(website)+len(rules)+len(repos))
	all = append(all, website...)
	all = append(all, rules...)
	all = append(all, repos...)

	p.logger().Info("total chunks generated", "chunks", len(all))

	return p.UpdateIndex(ctx, all)
}
