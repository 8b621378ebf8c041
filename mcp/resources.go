package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/smallsizeleague/sslmcp"
)

// Resource URIs for the flat-file artifacts. The full-text scheme is the
// published surface; clients address resources by these exact strings.
const (
	URIWebsiteURLs    = "full-text://urls"
	URIWebsiteText    = "full-text://website"
	URIRulesText      = "full-text://rules"
	URIRepositoryText = "full-text://repository"
)

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         URIWebsiteURLs,
		Name:        "website-urls",
		Description: "The list of RoboCup SSL website URLs used as index sources",
		MIMEType:    "application/json",
	}, s.handleURLsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         URIWebsiteText,
		Name:        "website-text",
		Description: "The full text of the RoboCup SSL website",
		MIMEType:    "text/plain",
	}, s.fullTextHandler(func() string { return s.config.Paths.Website }, "website"))

	s.server.AddResource(&mcp.Resource{
		URI:         URIRulesText,
		Name:        "rules-text",
		Description: "The full text of the RoboCup SSL rules",
		MIMEType:    "text/plain",
	}, s.fullTextHandler(func() string { return s.config.Paths.Rules }, "rules"))

	s.server.AddResource(&mcp.Resource{
		URI:         URIRepositoryText,
		Name:        "repository-text",
		Description: "The full text of the RoboCup SSL repository listings",
		MIMEType:    "text/plain",
	}, s.fullTextHandler(func() string { return s.config.Paths.Repository }, "repository"))
}

func (s *Server) handleURLsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	urls, err := s.config.Artifacts.ReadURLList(s.config.Paths.URLs)
	if err != nil {
		if sslmcp.ErrorCode(err) == sslmcp.ENOTFOUND {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, err
	}

	s.logger.Info("retrieved website URLs", "count", len(urls))

	data, err := json.Marshal(urls)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EINTERNAL, "marshaling URL list: %v", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// fullTextHandler serves one full-text dump file. An empty dump yields a
// fixed message rather than an empty resource so clients see why there is
// no content.
func (s *Server) fullTextHandler(path func() string, name string) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		data, err := s.config.Artifacts.Read(path())
		if err != nil {
			if sslmcp.ErrorCode(err) == sslmcp.ENOTFOUND {
				return nil, mcp.ResourceNotFoundError(req.Params.URI)
			}
			return nil, err
		}

		text := string(data)
		if text == "" {
			s.logger.Warn("full text artifact is empty", "resource", name)
			text = fmt.Sprintf("No %s text found. The tool didn't find any %s text.", name, name)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     text,
			}},
		}, nil
	}
}
