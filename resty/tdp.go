// Package resty provides the HTTP client for the external TDP search API.
package resty

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smallsizeleague/sslmcp"
)

// DefaultBaseURL is the public TDP search API endpoint operated by the
// RoboTeamTwente TDP project.
const DefaultBaseURL = "https://functionapp-test-dotenv-310.azurewebsites.net"

// DefaultLeague restricts searches to Small Size League papers.
const DefaultLeague = "soccer_smallsize"

const defaultTimeout = 30 * time.Second

var _ sslmcp.TDPService = (*TDPService)(nil)

// TDPService queries the tdpsearch.com API for Team Description Paper
// paragraphs.
type TDPService struct {
	client *resty.Client
	league string
}

// TDPOption configures a TDPService.
type TDPOption func(*TDPService)

// WithLeague overrides the league searched. Defaults to DefaultLeague.
func WithLeague(league string) TDPOption {
	return func(s *TDPService) {
		s.league = league
	}
}

// NewTDPService creates a TDPService against the given base URL.
// An empty baseURL selects DefaultBaseURL.
func NewTDPService(baseURL string, opts ...TDPOption) *TDPService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	s := &TDPService{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetRetryCount(2).
			SetRetryWaitTime(1 * time.Second),
		league: DefaultLeague,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search queries the TDP API. The paragraphs argument only caps markdown
// rendering; the full result is returned so callers can apply their own
// cutoff.
func (s *TDPService) Search(ctx context.Context, query string, paragraphs int) (*sslmcp.TDPResult, error) {
	if query == "" {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "query required")
	}

	var result sslmcp.TDPResult
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetQueryParam("leagues", s.league).
		SetResult(&result).
		Get("/api/query")
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "TDP search request failed: %v", err)
	}
	if resp.IsError() {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "TDP search returned HTTP %d", resp.StatusCode())
	}

	return &result, nil
}
