package main

import (
	"fmt"

	"github.com/smallsizeleague/sslmcp"
)

// Run executes the update-database command. It regenerates documents from
// the stored URL list plus the rules and repository sources, and commits
// every chunk to the index.
func (c *UpdateDatabaseCmd) Run(deps *Dependencies) error {
	websiteURLs, err := deps.Artifacts.ReadURLList(deps.Paths.URLs)
	if err != nil {
		if sslmcp.ErrorCode(err) != sslmcp.ENOTFOUND {
			return err
		}
		deps.Logger.Warn("no stored URL list, using seed URLs", "path", deps.Paths.URLs)
		websiteURLs = WebsiteSeeds
	}

	website, err := deps.Pipeline.GenerateDocuments(deps.Ctx, websiteURLs, sslmcp.SourceWebsite, 0.6, deps.Paths.Website)
	if err != nil {
		return err
	}
	rules, err := deps.Pipeline.GenerateDocuments(deps.Ctx, RulesURLs, sslmcp.SourceRules, 1, deps.Paths.Rules)
	if err != nil {
		return err
	}
	repos, err := deps.Pipeline.GenerateDocuments(deps.Ctx, RepositoryURLs, sslmcp.SourceRepository, 0, deps.Paths.Repository)
	if err != nil {
		return err
	}

	all := append(append(website, rules...), repos...)

	report, err := deps.Pipeline.UpdateIndex(deps.Ctx, all)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	printReport(deps, report)
	return nil
}
