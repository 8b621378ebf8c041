package sslmcp

import "context"

// TokenCounter counts tokens in text for a specific encoding.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)

	// Len measures text length in tokens without a context; used as the
	// length function for text splitting. Implementations return 0 for
	// text that cannot be encoded.
	Len(text string) int
}
