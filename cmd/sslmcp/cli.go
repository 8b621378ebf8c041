package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/smallsizeleague/sslmcp"
	"github.com/smallsizeleague/sslmcp/fs"
	"github.com/smallsizeleague/sslmcp/ingest"
	"github.com/smallsizeleague/sslmcp/mcp"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Pipeline  *ingest.Pipeline
	Index     sslmcp.Index
	Artifacts *fs.ArtifactStore
	Server    *mcp.Server

	// Artifact paths resolved against the data directory.
	Paths mcp.ArtifactPaths
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	UpdateSources   UpdateSourcesCmd   `cmd:"" name:"update-sources" help:"Refresh the website URL list from the sitemap"`
	UpdateDocuments UpdateDocumentsCmd `cmd:"" name:"update-documents" help:"Load sources and regenerate the full-text dumps"`
	UpdateDatabase  UpdateDatabaseCmd  `cmd:"" name:"update-database" help:"Load all sources and commit their chunks to the index"`
	RunAll          RunAllCmd          `cmd:"" name:"run-all" help:"Run the full update process end to end"`
	Search          SearchCmd          `cmd:"" help:"Query the vector index"`
	Serve           ServeCmd           `cmd:"" help:"Serve the MCP server"`
}

// UpdateSourcesCmd is the "update-sources" subcommand.
type UpdateSourcesCmd struct {
	SitemapURL string `name:"sitemap-url" default:"${sitemap_url}" help:"URL of the sitemap to process"`
}

// UpdateDocumentsCmd is the "update-documents" subcommand.
type UpdateDocumentsCmd struct {
	Source      []string `short:"s" help:"Source URLs to load (defaults to the stored URL list)"`
	Type        string   `default:"website_page" help:"Source type tag: website_page, rules, or repository"`
	Reliability float64  `default:"0.6" help:"Reliability weight recorded on the documents"`
}

// UpdateDatabaseCmd is the "update-database" subcommand.
type UpdateDatabaseCmd struct{}

// RunAllCmd is the "run-all" subcommand.
type RunAllCmd struct {
	Query string `default:"How to submit a paper?" help:"Query used to smoke-test the index after the update"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query     string  `arg:"" help:"Search query"`
	K         int     `short:"k" default:"2" help:"Maximum number of results"`
	Filter    string  `short:"f" help:"Restrict to one source type: website_page, rules, or repository"`
	Threshold float64 `short:"t" default:"0" help:"Minimum relevance score in [0,1]"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Transport string `enum:"stdio,http" default:"stdio" help:"Transport to serve on"`
	Addr      string `default:":8000" help:"Listen address for the HTTP transport"`
}
