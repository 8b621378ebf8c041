package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallsizeleague/sslmcp"
	main "github.com/smallsizeleague/sslmcp/cmd/sslmcp"
	"github.com/smallsizeleague/sslmcp/fs"
	"github.com/smallsizeleague/sslmcp/ingest"
	"github.com/smallsizeleague/sslmcp/mcp"
	"github.com/smallsizeleague/sslmcp/mock"
)

func docPipeline(loader *mock.Loader, chunker *mock.Chunker, artifacts sslmcp.ArtifactWriter) *ingest.Pipeline {
	return &ingest.Pipeline{
		Loader:    loader,
		Chunker:   chunker,
		Artifacts: artifacts,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

func TestUpdateDocumentsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("loads explicit source URLs and reports chunk count", func(t *testing.T) {
		t.Parallel()

		loader := &mock.Loader{
			LoadAllFn: func(_ context.Context, urls []string) ([]*sslmcp.Document, error) {
				assert.Equal(t, []string{"https://ssl.robocup.org/rules/"}, urls)
				return []*sslmcp.Document{{Text: "rule text", SourceURL: urls[0]}}, nil
			},
		}
		chunker := &mock.Chunker{
			SplitFn: func(_ context.Context, doc *sslmcp.Document) ([]*sslmcp.Chunk, error) {
				assert.Equal(t, sslmcp.SourceWebsite, doc.Type)
				assert.Equal(t, 0.6, doc.Reliability)
				return []*sslmcp.Chunk{
					{ID: "doc_a", Text: "rule text", SourceURL: doc.SourceURL, Type: doc.Type},
				}, nil
			},
		}
		artifacts := &mock.ArtifactWriter{
			WriteFullTextFn: func(path string, _ []*sslmcp.Document) error {
				assert.Equal(t, "data/full_website.txt", path)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Pipeline: docPipeline(loader, chunker, artifacts),
			Paths:    mcp.ArtifactPaths{Website: "data/full_website.txt"},
		}

		cmd := &main.UpdateDocumentsCmd{
			Source:      []string{"https://ssl.robocup.org/rules/"},
			Type:        "website_page",
			Reliability: 0.6,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Generated 1 chunks from 1 URLs")
		assert.Contains(t, output, "data/full_website.txt")
	})

	t.Run("falls back to the stored URL list", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewArtifactStore()
		urlsPath := filepath.Join(dir, "processed_urls.txt")
		require.NoError(t, store.WriteURLList(urlsPath, []string{
			"https://ssl.robocup.org/rules/",
			"https://ssl.robocup.org/divisions/",
		}))

		var loaded []string
		loader := &mock.Loader{
			LoadAllFn: func(_ context.Context, urls []string) ([]*sslmcp.Document, error) {
				loaded = urls
				return nil, nil
			},
		}
		chunker := &mock.Chunker{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Pipeline:  docPipeline(loader, chunker, store),
			Artifacts: store,
			Paths:     mcp.ArtifactPaths{URLs: urlsPath, Website: filepath.Join(dir, "full_website.txt")},
		}

		cmd := &main.UpdateDocumentsCmd{Type: "website_page", Reliability: 0.6}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://ssl.robocup.org/rules/",
			"https://ssl.robocup.org/divisions/",
		}, loaded)
	})

	t.Run("selects the rules dump path for the rules type", func(t *testing.T) {
		t.Parallel()

		loader := &mock.Loader{
			LoadAllFn: func(_ context.Context, urls []string) ([]*sslmcp.Document, error) {
				return []*sslmcp.Document{{Text: "rules", SourceURL: urls[0]}}, nil
			},
		}
		chunker := &mock.Chunker{
			SplitFn: func(_ context.Context, doc *sslmcp.Document) ([]*sslmcp.Chunk, error) {
				return nil, nil
			},
		}
		var dumpPath string
		artifacts := &mock.ArtifactWriter{
			WriteFullTextFn: func(path string, _ []*sslmcp.Document) error {
				dumpPath = path
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Pipeline: docPipeline(loader, chunker, artifacts),
			Paths: mcp.ArtifactPaths{
				Website: "data/full_website.txt",
				Rules:   "data/full_rules.txt",
			},
		}

		cmd := &main.UpdateDocumentsCmd{
			Source:      []string{"https://robocup-ssl.github.io/ssl-rules/sslrules.html"},
			Type:        "rules",
			Reliability: 1,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "data/full_rules.txt", dumpPath)
	})

	t.Run("rejects an unknown source type", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.UpdateDocumentsCmd{Type: "wiki"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sslmcp.EINVALID, sslmcp.ErrorCode(err))
	})

	t.Run("hints at update-sources when the URL list is missing", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Artifacts: fs.NewArtifactStore(),
			Paths:     mcp.ArtifactPaths{URLs: filepath.Join(t.TempDir(), "missing.txt")},
		}

		cmd := &main.UpdateDocumentsCmd{Type: "website_page"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sslmcp.ENOTFOUND, sslmcp.ErrorCode(err))
		assert.Contains(t, stderr.String(), "update-sources")
	})
}
