package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/smallsizeleague/sslmcp"
)

// Defaults for tool arguments, matching the documented tool contracts.
const (
	DefaultSearchK       = 2
	DefaultTDPParagraphs = 5
)

// SearchInput is the input schema for the ssl_search tool.
type SearchInput struct {
	Query        string  `json:"query" jsonschema:"the search query about RoboCup SSL"`
	K            int     `json:"k,omitempty" jsonschema:"maximum number of documents to return (default 2)"`
	SourceFilter string  `json:"source_filter,omitempty" jsonschema:"restrict results to one source: website_page, rules, or repository"`
	Threshold    float64 `json:"threshold,omitempty" jsonschema:"minimum relevance score in [0,1]; 0 returns all documents"`
}

// SearchOutput is the output schema for the ssl_search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput is a single ranked document.
type SearchResultOutput struct {
	ID          string  `json:"id"`
	Content     string  `json:"content"`
	SourceURL   string  `json:"source_url"`
	Type        string  `json:"type"`
	Reliability float64 `json:"reliability,omitempty"`
	Score       float64 `json:"score"`
}

// TDPSearchInput is the input schema for the tdp_search tool.
type TDPSearchInput struct {
	Query      string `json:"query" jsonschema:"the search query to look up in Team Description Papers"`
	Paragraphs int    `json:"paragraphs,omitempty" jsonschema:"maximum number of paragraphs to render (default 5)"`
}

// TDPSearchOutput is the output schema for the tdp_search tool.
type TDPSearchOutput struct {
	Markdown string `json:"markdown"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ssl_search",
		Description: "Retrieve the most relevant RoboCup Small Size League documents for a query, drawn from the league website and rules.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "tdp_search",
		Description: "Search published Team Description Papers for technical insights about Small Size League robots and software.",
	}, s.handleTDPSearch)
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := sslmcp.SearchOptions{
		K:         input.K,
		Threshold: input.Threshold,
	}
	if opts.K <= 0 {
		opts.K = DefaultSearchK
	}
	if input.SourceFilter != "" {
		typ, err := sslmcp.ParseSourceType(input.SourceFilter)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		opts.Type = &typ
	}

	results, err := s.config.Index.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	if len(results) == 0 {
		s.logger.Warn("no documents found",
			"query", input.Query,
			"k", opts.K,
			"filter", input.SourceFilter,
			"threshold", input.Threshold,
		)
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i, r := range results {
		output.Results[i] = SearchResultOutput{
			ID:          r.Chunk.ID,
			Content:     r.Chunk.Text,
			SourceURL:   r.Chunk.SourceURL,
			Type:        string(r.Chunk.Type),
			Reliability: r.Chunk.Reliability,
			Score:       r.Score,
		}
	}

	return nil, output, nil
}

func (s *Server) handleTDPSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TDPSearchInput,
) (*mcp.CallToolResult, TDPSearchOutput, error) {
	paragraphs := input.Paragraphs
	if paragraphs <= 0 {
		paragraphs = DefaultTDPParagraphs
	}

	result, err := s.config.TDP.Search(ctx, input.Query, paragraphs)
	if err != nil {
		return nil, TDPSearchOutput{}, err
	}

	return nil, TDPSearchOutput{Markdown: result.Markdown(paragraphs)}, nil
}
