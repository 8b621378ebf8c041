package http_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallsizeleague/sslmcp"
	sslhttp "github.com/smallsizeleague/sslmcp/http"
	"github.com/smallsizeleague/sslmcp/mock"
)

const pageSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://ssl.robocup.org/</loc></url>
  <url><loc>https://ssl.robocup.org/rules/</loc></url>
  <url><loc>https://ssl.robocup.org/teams/2026/</loc></url>
  <url><loc>https://ssl.robocup.org/rules/</loc></url>
</urlset>`

func staticFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			body, ok := pages[url]
			if !ok {
				return "", sslmcp.Errorf(sslmcp.EUNAVAILABLE, "HTTP 404 for %s", url)
			}
			return body, nil
		},
	}
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("ExtractsURLsInDocumentOrder", func(t *testing.T) {
		t.Parallel()

		svc := sslhttp.NewSitemapService(staticFetcher(map[string]string{
			"https://ssl.robocup.org/page-sitemap.xml": pageSitemap,
		}))

		urls, err := svc.DiscoverURLs(context.Background(), "https://ssl.robocup.org/page-sitemap.xml", nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://ssl.robocup.org/",
			"https://ssl.robocup.org/rules/",
			"https://ssl.robocup.org/teams/2026/",
		}, urls)
	})

	t.Run("AppliesBlacklistFilter", func(t *testing.T) {
		t.Parallel()

		svc := sslhttp.NewSitemapService(staticFetcher(map[string]string{
			"https://ssl.robocup.org/page-sitemap.xml": pageSitemap,
		}))

		filter := &sslmcp.URLFilter{Substrings: []string{"teams"}}
		urls, err := svc.DiscoverURLs(context.Background(), "https://ssl.robocup.org/page-sitemap.xml", filter)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://ssl.robocup.org/",
			"https://ssl.robocup.org/rules/",
		}, urls)
	})

	t.Run("FollowsSitemapIndex", func(t *testing.T) {
		t.Parallel()

		index := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://ssl.robocup.org/page-sitemap.xml</loc></sitemap>
  <sitemap><loc>https://ssl.robocup.org/post-sitemap.xml</loc></sitemap>
</sitemapindex>`
		posts := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://ssl.robocup.org/vision-blackout/</loc></url>
</urlset>`

		svc := sslhttp.NewSitemapService(staticFetcher(map[string]string{
			"https://ssl.robocup.org/sitemap_index.xml": index,
			"https://ssl.robocup.org/page-sitemap.xml":  pageSitemap,
			"https://ssl.robocup.org/post-sitemap.xml":  posts,
		}))

		urls, err := svc.DiscoverURLs(context.Background(), "https://ssl.robocup.org/sitemap_index.xml", nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://ssl.robocup.org/",
			"https://ssl.robocup.org/rules/",
			"https://ssl.robocup.org/teams/2026/",
			"https://ssl.robocup.org/vision-blackout/",
		}, urls)
	})

	t.Run("CyclicSitemapIndexTerminates", func(t *testing.T) {
		t.Parallel()

		cyclic := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://ssl.robocup.org/sitemap_index.xml</loc></sitemap>
</sitemapindex>`

		svc := sslhttp.NewSitemapService(staticFetcher(map[string]string{
			"https://ssl.robocup.org/sitemap_index.xml": cyclic,
		}))

		urls, err := svc.DiscoverURLs(context.Background(), "https://ssl.robocup.org/sitemap_index.xml", nil)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("EmptySitemapURLIsInvalid", func(t *testing.T) {
		t.Parallel()

		svc := sslhttp.NewSitemapService(staticFetcher(nil))

		_, err := svc.DiscoverURLs(context.Background(), "", nil)
		require.Error(t, err)
		assert.Equal(t, sslmcp.EINVALID, sslmcp.ErrorCode(err))
	})

	t.Run("MalformedXMLIsInvalid", func(t *testing.T) {
		t.Parallel()

		svc := sslhttp.NewSitemapService(staticFetcher(map[string]string{
			"https://ssl.robocup.org/page-sitemap.xml": "<urlset><url>",
		}))

		_, err := svc.DiscoverURLs(context.Background(), "https://ssl.robocup.org/page-sitemap.xml", nil)
		require.Error(t, err)
	})

	t.Run("FetchFailurePropagates", func(t *testing.T) {
		t.Parallel()

		svc := sslhttp.NewSitemapService(staticFetcher(nil))

		_, err := svc.DiscoverURLs(context.Background(), "https://ssl.robocup.org/page-sitemap.xml", nil)
		require.Error(t, err)
		assert.Equal(t, sslmcp.EUNAVAILABLE, sslmcp.ErrorCode(err))
	})
}
