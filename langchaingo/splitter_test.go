package langchaingo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/smallsizeleague/sslmcp"
	"github.com/smallsizeleague/sslmcp/langchaingo"
	"github.com/smallsizeleague/sslmcp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeCounter measures length in runes, so tests can reason about chunk
// sizes without a real tokenizer.
func runeCounter() *mock.TokenCounter {
	return &mock.TokenCounter{
		CountTokensFn: func(_ context.Context, text string) (int, error) {
			return len([]rune(text)), nil
		},
		LenFn: func(text string) int {
			return len([]rune(text))
		},
	}
}

func TestChunker_Split(t *testing.T) {
	t.Parallel()

	doc := func(text string) *sslmcp.Document {
		return &sslmcp.Document{
			Text:        text,
			SourceURL:   "https://ssl.robocup.org/rules/",
			Type:        sslmcp.SourceRules,
			Reliability: 1,
		}
	}

	t.Run("short document yields a single chunk", func(t *testing.T) {
		t.Parallel()

		c := langchaingo.NewChunker(runeCounter())

		chunks, err := c.Split(context.Background(), doc("A short rules page."))
		require.NoError(t, err)
		require.Len(t, chunks, 1)

		assert.Equal(t, "A short rules page.", chunks[0].Text)
		assert.Equal(t, sslmcp.SourceRules, chunks[0].Type)
		assert.Equal(t, "https://ssl.robocup.org/rules/", chunks[0].SourceURL)
		assert.Equal(t, 1.0, chunks[0].Reliability)
		assert.Positive(t, chunks[0].TokenCount)
	})

	t.Run("long document is split at paragraph boundaries", func(t *testing.T) {
		t.Parallel()

		c := langchaingo.NewChunker(runeCounter(),
			langchaingo.WithChunkSize(40),
			langchaingo.WithChunkOverlap(0),
		)

		paragraphs := []string{
			"Paragraph one about the field size.",
			"Paragraph two about robot limits.",
			"Paragraph three about the ball.",
		}

		chunks, err := c.Split(context.Background(), doc(strings.Join(paragraphs, "\n\n")))
		require.NoError(t, err)
		require.Greater(t, len(chunks), 1)

		for _, chunk := range chunks {
			assert.LessOrEqual(t, len([]rune(chunk.Text)), 40)
			assert.NotEmpty(t, strings.TrimSpace(chunk.Text))
		}
	})

	t.Run("chunk IDs are deterministic across runs", func(t *testing.T) {
		t.Parallel()

		c := langchaingo.NewChunker(runeCounter())

		first, err := c.Split(context.Background(), doc("Stable content."))
		require.NoError(t, err)
		second, err := c.Split(context.Background(), doc("Stable content."))
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})

	t.Run("rejects document without source URL", func(t *testing.T) {
		t.Parallel()

		c := langchaingo.NewChunker(runeCounter())

		_, err := c.Split(context.Background(), &sslmcp.Document{Text: "x", Type: sslmcp.SourceRules})
		assert.Equal(t, sslmcp.EINVALID, sslmcp.ErrorCode(err))
	})

	t.Run("whitespace-only document yields no chunks", func(t *testing.T) {
		t.Parallel()

		c := langchaingo.NewChunker(runeCounter())

		chunks, err := c.Split(context.Background(), doc("  \n\n\t  "))
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}
