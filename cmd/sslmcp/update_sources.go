package main

import (
	"fmt"

	"github.com/smallsizeleague/sslmcp"
)

// Run executes the update-sources command.
func (c *UpdateSourcesCmd) Run(deps *Dependencies) error {
	urls, err := deps.Pipeline.UpdateSources(deps.Ctx, c.SitemapURL, WebsiteSeeds, defaultFilter(), deps.Paths.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d URLs into %s\n", len(urls), deps.Paths.URLs)
	return nil
}
