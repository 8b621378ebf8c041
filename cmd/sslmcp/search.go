package main

import (
	"fmt"

	"github.com/smallsizeleague/sslmcp"
)

// Run executes the search command against the local index.
func (c *SearchCmd) Run(deps *Dependencies) error {
	opts := sslmcp.SearchOptions{K: c.K, Threshold: c.Threshold}
	if c.Filter != "" {
		typ, err := sslmcp.ParseSourceType(c.Filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
			return err
		}
		opts.Type = &typ
	}

	results, err := deps.Index.Search(deps.Ctx, c.Query, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	printResults(deps, results)
	return nil
}

func printResults(deps *Dependencies, results []sslmcp.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return
	}
	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. [%.3f] %s (%s)\n", i+1, r.Score, r.Chunk.SourceURL, r.Chunk.Type)
		fmt.Fprintf(deps.Stdout, "   %s\n", r.Chunk.Text)
	}
}
