// Package mcp exposes the index and TDP search over the Model Context
// Protocol, with stdio and streamable HTTP transports.
package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/smallsizeleague/sslmcp"
)

// Version is the MCP server version.
const Version = "1.0.0"

// ArtifactReader reads the flat-file artifacts backing the full-text
// resources.
type ArtifactReader interface {
	Read(path string) ([]byte, error)
	ReadURLList(path string) ([]string, error)
}

// ArtifactPaths locates the artifact files on disk.
type ArtifactPaths struct {
	URLs       string
	Website    string
	Rules      string
	Repository string
}

// Config wires the server's collaborators.
type Config struct {
	Index     sslmcp.Index
	TDP       sslmcp.TDPService
	Artifacts ArtifactReader
	Paths     ArtifactPaths
	Logger    *slog.Logger
}

// Validate returns an error if a required collaborator is missing.
func (c Config) Validate() error {
	if c.Index == nil {
		return sslmcp.Errorf(sslmcp.EINVALID, "index required")
	}
	if c.TDP == nil {
		return sslmcp.Errorf(sslmcp.EINVALID, "TDP service required")
	}
	if c.Artifacts == nil {
		return sslmcp.Errorf(sslmcp.EINVALID, "artifact reader required")
	}
	return nil
}

// Server is the MCP server for the Small Size League knowledge base.
type Server struct {
	config Config
	logger *slog.Logger
	server *mcp.Server
}

// NewServer creates an MCP server with the given configuration.
func NewServer(config Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		logger: logger,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "small-size-league-mcp",
			Version: Version,
		}, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is canceled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over streamable HTTP on addr, with a
// plain /health route beside the protocol endpoint.
// It blocks until the context is canceled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	})

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info("serving MCP over HTTP", "addr", addr)

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
