package tiktoken_test

import (
	"context"
	"testing"

	"github.com/smallsizeleague/sslmcp/tiktoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter(t *testing.T) {
	t.Parallel()

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		tc, err := tiktoken.NewTokenCounter("")
		require.NoError(t, err)

		count, err := tc.CountTokens(context.Background(), "The Small Size League is a RoboCup soccer league.")
		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty text counts zero", func(t *testing.T) {
		t.Parallel()

		tc, err := tiktoken.NewTokenCounter(tiktoken.DefaultEncoding)
		require.NoError(t, err)

		count, err := tc.CountTokens(context.Background(), "")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Len agrees with CountTokens", func(t *testing.T) {
		t.Parallel()

		tc, err := tiktoken.NewTokenCounter("")
		require.NoError(t, err)

		text := "robots play soccer on a green carpet"
		count, err := tc.CountTokens(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, count, tc.Len(text))
	})

	t.Run("rejects unknown encoding", func(t *testing.T) {
		t.Parallel()

		_, err := tiktoken.NewTokenCounter("no-such-encoding")
		assert.Error(t, err)
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		tc, err := tiktoken.NewTokenCounter("")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = tc.CountTokens(ctx, "text")
		assert.Error(t, err)
	})
}
