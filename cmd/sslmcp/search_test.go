package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallsizeleague/sslmcp"
	main "github.com/smallsizeleague/sslmcp/cmd/sslmcp"
	"github.com/smallsizeleague/sslmcp/mock"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked results with score, URL, and text", func(t *testing.T) {
		t.Parallel()

		index := &mock.Index{
			SearchFn: func(_ context.Context, query string, opts sslmcp.SearchOptions) ([]sslmcp.SearchResult, error) {
				assert.Equal(t, "division A field size", query)
				assert.Equal(t, 2, opts.K)
				return []sslmcp.SearchResult{
					{
						Chunk: &sslmcp.Chunk{
							ID:        "doc_1",
							Text:      "The field for division A is 12 m long.",
							SourceURL: "https://robocup-ssl.github.io/ssl-rules/sslrules.html",
							Type:      sslmcp.SourceRules,
						},
						Score: 0.91,
					},
					{
						Chunk: &sslmcp.Chunk{
							ID:        "doc_2",
							Text:      "Division B uses a smaller field.",
							SourceURL: "https://ssl.robocup.org/rules/",
							Type:      sslmcp.SourceWebsite,
						},
						Score: 0.77,
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Index:  index,
		}

		cmd := &main.SearchCmd{Query: "division A field size", K: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "0.910")
		assert.Contains(t, output, "https://robocup-ssl.github.io/ssl-rules/sslrules.html")
		assert.Contains(t, output, "The field for division A is 12 m long.")
		assert.Contains(t, output, "Division B uses a smaller field.")
	})

	t.Run("passes the source filter to the index", func(t *testing.T) {
		t.Parallel()

		index := &mock.Index{
			SearchFn: func(_ context.Context, _ string, opts sslmcp.SearchOptions) ([]sslmcp.SearchResult, error) {
				require.NotNil(t, opts.Type)
				assert.Equal(t, sslmcp.SourceRules, *opts.Type)
				assert.Equal(t, 0.5, opts.Threshold)
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Index:  index,
		}

		cmd := &main.SearchCmd{Query: "offside", K: 2, Filter: "rules", Threshold: 0.5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results found.")
	})

	t.Run("rejects an unknown source filter", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Index:  &mock.Index{},
		}

		cmd := &main.SearchCmd{Query: "offside", K: 2, Filter: "wiki"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sslmcp.EINVALID, sslmcp.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns error when the index fails", func(t *testing.T) {
		t.Parallel()

		index := &mock.Index{
			SearchFn: func(_ context.Context, _ string, _ sslmcp.SearchOptions) ([]sslmcp.SearchResult, error) {
				return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "embedding provider unreachable")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Index:  index,
		}

		cmd := &main.SearchCmd{Query: "offside", K: 2}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "embedding provider unreachable")
	})
}
