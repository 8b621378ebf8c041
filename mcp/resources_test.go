package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_handleURLsResource(t *testing.T) {
	t.Parallel()

	t.Run("ReturnsJSONURLList", func(t *testing.T) {
		t.Parallel()

		config := testConfig()
		config.Artifacts = &fakeArtifacts{
			urls: map[string][]string{
				"data/processed_urls.txt": {
					"https://ssl.robocup.org/",
					"https://ssl.robocup.org/rules/",
				},
			},
		}
		server, err := NewServer(config)
		require.NoError(t, err)

		result, err := server.handleURLsResource(context.Background(), makeReadResourceRequest(URIWebsiteURLs))
		require.NoError(t, err)

		require.Len(t, result.Contents, 1)
		assert.Equal(t, URIWebsiteURLs, result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t, `["https://ssl.robocup.org/","https://ssl.robocup.org/rules/"]`, result.Contents[0].Text)
	})

	t.Run("MissingArtifactIsResourceNotFound", func(t *testing.T) {
		t.Parallel()

		server, err := NewServer(testConfig())
		require.NoError(t, err)

		_, err = server.handleURLsResource(context.Background(), makeReadResourceRequest(URIWebsiteURLs))
		require.Error(t, err)
	})
}

func TestResourceURIs(t *testing.T) {
	t.Parallel()

	// Clients address resources by these exact strings; the full-text
	// scheme is the published surface and must not drift.
	assert.Equal(t, "full-text://urls", URIWebsiteURLs)
	assert.Equal(t, "full-text://website", URIWebsiteText)
	assert.Equal(t, "full-text://rules", URIRulesText)
	assert.Equal(t, "full-text://repository", URIRepositoryText)
}

func TestServer_fullTextResources(t *testing.T) {
	t.Parallel()

	t.Run("ServesDumpContent", func(t *testing.T) {
		t.Parallel()

		config := testConfig()
		config.Artifacts = &fakeArtifacts{
			files: map[string]string{
				"data/rules.txt": "DOCUMENT 1\nSOURCE: https://ssl.robocup.org/rules/\n",
			},
		}
		server, err := NewServer(config)
		require.NoError(t, err)

		handler := server.fullTextHandler(func() string { return "data/rules.txt" }, "rules")
		result, err := handler(context.Background(), makeReadResourceRequest(URIRulesText))
		require.NoError(t, err)

		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "DOCUMENT 1")
	})

	t.Run("EmptyDumpYieldsPlaceholderMessage", func(t *testing.T) {
		t.Parallel()

		config := testConfig()
		config.Artifacts = &fakeArtifacts{
			files: map[string]string{"data/website.txt": ""},
		}
		server, err := NewServer(config)
		require.NoError(t, err)

		handler := server.fullTextHandler(func() string { return "data/website.txt" }, "website")
		result, err := handler(context.Background(), makeReadResourceRequest(URIWebsiteText))
		require.NoError(t, err)

		assert.Equal(t, "No website text found. The tool didn't find any website text.", result.Contents[0].Text)
	})

	t.Run("MissingDumpIsResourceNotFound", func(t *testing.T) {
		t.Parallel()

		server, err := NewServer(testConfig())
		require.NoError(t, err)

		handler := server.fullTextHandler(func() string { return "data/repository.txt" }, "repository")
		_, err = handler(context.Background(), makeReadResourceRequest(URIRepositoryText))
		require.Error(t, err)
	})
}
