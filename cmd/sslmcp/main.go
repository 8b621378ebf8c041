package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/smallsizeleague/sslmcp"
	"github.com/smallsizeleague/sslmcp/fs"
	"github.com/smallsizeleague/sslmcp/goquery"
	sslhttp "github.com/smallsizeleague/sslmcp/http"
	"github.com/smallsizeleague/sslmcp/ingest"
	"github.com/smallsizeleague/sslmcp/langchaingo"
	"github.com/smallsizeleague/sslmcp/mcp"
	"github.com/smallsizeleague/sslmcp/resty"
	sslslog "github.com/smallsizeleague/sslmcp/slog"
	"github.com/smallsizeleague/sslmcp/sqlite"
	"github.com/smallsizeleague/sslmcp/tiktoken"
)

// crawlRPS is the per-domain request rate used when loading pages.
const crawlRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Data directory holding the artifacts and the database.
	// Set before calling Run().
	DataDir string

	// SQLite database backing the vector index.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataDir: defaultDataDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Paths: mcp.ArtifactPaths{
			URLs:       filepath.Join(m.DataDir, urlsFile),
			Website:    filepath.Join(m.DataDir, websiteFile),
			Rules:      filepath.Join(m.DataDir, rulesFile),
			Repository: filepath.Join(m.DataDir, repositoryFile),
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sslmcp"),
		kong.Description("RoboCup Small Size League knowledge index and MCP server"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
		kong.Vars{"sitemap_url": DefaultSitemapURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sslmcp --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Artifacts = fs.NewArtifactStore()

	counter, err := tiktoken.NewTokenCounter(tiktoken.DefaultEncoding)
	if err != nil {
		return fmt.Errorf("failed to create token counter: %w", err)
	}

	fetcher := sslhttp.NewFetcher()
	loader := &sslhttp.Loader{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Limiter:   ingest.NewDomainLimiter(crawlRPS),
		Counter:   counter,
		Logger:    logger,
	}

	deps.Pipeline = &ingest.Pipeline{
		Sitemaps:  sslslog.NewLoggingSitemapService(sslhttp.NewSitemapService(fetcher), logger),
		Loader:    loader,
		Chunker:   langchaingo.NewChunker(counter),
		Artifacts: deps.Artifacts,
		Logger:    logger,
	}

	// Commands that touch the index need the database and an embedding
	// provider; update-sources and update-documents do not.
	if cmd == "update-database" || cmd == "run-all" || cmd == "search" || cmd == "serve" {
		if err := os.MkdirAll(m.DataDir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory %q: %w", m.DataDir, err)
		}

		m.DB = sqlite.NewDB(filepath.Join(m.DataDir, databaseFile))
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: set SSLMCP_DATA to use a different data directory")
			return fmt.Errorf("failed to open database in %q: %w", m.DataDir, err)
		}
		defer m.Close()

		embedder, err := newEmbedder()
		if err != nil {
			return err
		}

		deps.Index = sslslog.NewLoggingIndex(sqlite.NewIndex(m.DB, embedder), logger)
		deps.Pipeline.Index = deps.Index
	}

	if cmd == "serve" {
		server, err := mcp.NewServer(mcp.Config{
			Index:     deps.Index,
			TDP:       sslslog.NewLoggingTDPService(resty.NewTDPService(os.Getenv("SSLMCP_TDP_URL")), logger),
			Artifacts: deps.Artifacts,
			Paths:     deps.Paths,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		deps.Server = server
	}

	return kongCtx.Run(deps)
}

// newEmbedder selects the embedding provider from the environment.
// SSLMCP_PROVIDER picks openai (default) or ollama.
func newEmbedder() (sslmcp.Embedder, error) {
	provider := os.Getenv("SSLMCP_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set. Set it or switch providers with SSLMCP_PROVIDER=ollama")
		}
		return langchaingo.NewOpenAIEmbedder(apiKey, os.Getenv("SSLMCP_EMBED_MODEL"), os.Getenv("OPENAI_BASE_URL"))
	case "ollama":
		return langchaingo.NewOllamaEmbedder(os.Getenv("OLLAMA_HOST"), os.Getenv("SSLMCP_EMBED_MODEL"))
	default:
		return nil, fmt.Errorf("unknown embedding provider %q (want openai or ollama)", provider)
	}
}

func defaultDataDir() string {
	if dir := os.Getenv("SSLMCP_DATA"); dir != "" {
		return dir
	}
	return "data"
}
