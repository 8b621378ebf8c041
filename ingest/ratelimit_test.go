package ingest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallsizeleague/sslmcp"
	"github.com/smallsizeleague/sslmcp/ingest"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("ImplementsDomainLimiter", func(t *testing.T) {
		t.Parallel()
		var _ sslmcp.DomainLimiter = ingest.NewDomainLimiter(1)
	})

	t.Run("FirstRequestIsImmediate", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "ssl.robocup.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond)
	})

	t.Run("SameDomainRequestsAreSpaced", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "ssl.robocup.org"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "ssl.robocup.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
	})

	t.Run("DifferentDomainsAreIndependent", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "ssl.robocup.org"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "github.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond)
	})

	t.Run("RespectsContextCancellation", func(t *testing.T) {
		t.Parallel()

		limiter := ingest.NewDomainLimiter(1)

		require.NoError(t, limiter.Wait(context.Background(), "ssl.robocup.org"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "ssl.robocup.org"))
	})
}
