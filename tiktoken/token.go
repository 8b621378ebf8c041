// Package tiktoken provides token counting using OpenAI's tiktoken
// encodings.
package tiktoken

import (
	"context"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	"github.com/smallsizeleague/sslmcp"
)

// DefaultEncoding is the encoding used when none is specified. It matches
// the GPT-4 family and the embedding models this project indexes with.
const DefaultEncoding = "cl100k_base"

var _ sslmcp.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using a tiktoken encoding.
type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTokenCounter creates a TokenCounter for the given encoding name.
// An empty name selects DefaultEncoding.
func NewTokenCounter(encoding string) (*TokenCounter, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding %q: %w", encoding, err)
	}
	return &TokenCounter{enc: enc}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return tc.Len(text), nil
}

// Len measures text length in tokens. Used as the length function for
// token-budgeted text splitting.
func (tc *TokenCounter) Len(text string) int {
	if text == "" {
		return 0
	}
	return len(tc.enc.Encode(text, nil, nil))
}
