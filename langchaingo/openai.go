package langchaingo

import (
	"context"
	"fmt"

	"github.com/smallsizeleague/sslmcp"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// DefaultOpenAIModel is the embedding model used when none is configured.
const DefaultOpenAIModel = "text-embedding-3-small"

var _ sslmcp.Embedder = (*OpenAIEmbedder)(nil)

// OpenAIEmbedder implements sslmcp.Embedder using the OpenAI embeddings API.
type OpenAIEmbedder struct {
	impl embeddings.Embedder
}

// NewOpenAIEmbedder creates an embedder backed by OpenAI. The model falls
// back to DefaultOpenAIModel when empty; baseURL may be empty to use the
// public API endpoint.
func NewOpenAIEmbedder(apiKey, model, baseURL string) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, sslmcp.Errorf(sslmcp.EINVALID, "OpenAI API key required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithEmbeddingModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	impl, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI embedder: %w", err)
	}

	return &OpenAIEmbedder{impl: impl}, nil
}

// EmbedDocuments embeds a batch of texts.
func (e *OpenAIEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := e.impl.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "OpenAI embedding request failed: %v", err)
	}
	return vecs, nil
}

// EmbedQuery embeds a single query string.
func (e *OpenAIEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.impl.EmbedQuery(ctx, text)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "OpenAI embedding request failed: %v", err)
	}
	return vec, nil
}
