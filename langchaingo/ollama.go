package langchaingo

import (
	"context"
	"fmt"

	"github.com/smallsizeleague/sslmcp"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

// DefaultOllamaModel is the local embedding model used when none is
// configured.
const DefaultOllamaModel = "nomic-embed-text"

var _ sslmcp.Embedder = (*OllamaEmbedder)(nil)

// OllamaEmbedder implements sslmcp.Embedder using a local Ollama server.
type OllamaEmbedder struct {
	impl embeddings.Embedder
}

// NewOllamaEmbedder creates an embedder backed by Ollama. The model falls
// back to DefaultOllamaModel when empty; serverURL may be empty to use the
// default local endpoint.
func NewOllamaEmbedder(serverURL, model string) (*OllamaEmbedder, error) {
	if model == "" {
		model = DefaultOllamaModel
	}

	opts := []ollama.Option{
		ollama.WithModel(model),
	}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	impl, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama embedder: %w", err)
	}

	return &OllamaEmbedder{impl: impl}, nil
}

// EmbedDocuments embeds a batch of texts.
func (e *OllamaEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := e.impl.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "Ollama embedding request failed: %v", err)
	}
	return vecs, nil
}

// EmbedQuery embeds a single query string.
func (e *OllamaEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.impl.EmbedQuery(ctx, text)
	if err != nil {
		return nil, sslmcp.Errorf(sslmcp.EUNAVAILABLE, "Ollama embedding request failed: %v", err)
	}
	return vec, nil
}
