package main

import (
	"fmt"

	"github.com/smallsizeleague/sslmcp"
	"github.com/smallsizeleague/sslmcp/ingest"
)

// Run executes the run-all command: a full ingestion run over every source
// followed by a smoke-test search against the freshly built index.
func (c *RunAllCmd) Run(deps *Dependencies) error {
	report, err := deps.Pipeline.RunAll(deps.Ctx, ingest.RunConfig{
		SitemapURL:   DefaultSitemapURL,
		WebsiteSeeds: WebsiteSeeds,
		RulesURLs:    RulesURLs,
		RepoURLs:     RepositoryURLs,
		Filter:       defaultFilter(),
		URLsPath:     deps.Paths.URLs,
		WebsitePath:  deps.Paths.Website,
		RulesPath:    deps.Paths.Rules,
		RepoPath:     deps.Paths.Repository,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	printReport(deps, report)

	results, err := deps.Index.Search(deps.Ctx, c.Query, sslmcp.SearchOptions{K: 2})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nSmoke test: %q\n", c.Query)
	printResults(deps, results)
	return nil
}

func printReport(deps *Dependencies, report *ingest.Report) {
	fmt.Fprintf(deps.Stdout, "Run %s: committed %d/%d chunks (%.0f%%)\n",
		report.RunID, report.Committed, report.Attempted, report.Ratio()*100)
	if report.Invalid > 0 {
		fmt.Fprintf(deps.Stdout, "  invalid: %d\n", report.Invalid)
	}
	if report.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "  duplicates: %d\n", report.Duplicates)
	}
	if report.FailedBatches > 0 {
		fmt.Fprintf(deps.Stdout, "  failed batches: %d\n", report.FailedBatches)
	}
}
