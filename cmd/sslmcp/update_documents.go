package main

import (
	"fmt"

	"github.com/smallsizeleague/sslmcp"
)

// Run executes the update-documents command.
func (c *UpdateDocumentsCmd) Run(deps *Dependencies) error {
	typ, err := sslmcp.ParseSourceType(c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	urls := c.Source
	if len(urls) == 0 {
		urls, err = deps.Artifacts.ReadURLList(deps.Paths.URLs)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: run 'sslmcp update-sources' first or pass --source")
			return err
		}
	}

	dumpPath := deps.Paths.Website
	switch typ {
	case sslmcp.SourceRules:
		dumpPath = deps.Paths.Rules
	case sslmcp.SourceRepository:
		dumpPath = deps.Paths.Repository
	}

	chunks, err := deps.Pipeline.GenerateDocuments(deps.Ctx, urls, typ, c.Reliability, dumpPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated %d chunks from %d URLs; full text written to %s\n", len(chunks), len(urls), dumpPath)
	return nil
}
