package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/epicweb-dev/slides-mcp/internal/config"
	"github.com/epicweb-dev/slides-mcp/internal/httpserver"
	"github.com/epicweb-dev/slides-mcp/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	base, err := cfg.BaseURL()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Stdio {
		// Over stdio there is no inbound request to learn our address from,
		// so the public URL has to be configured up front.
		if base == nil {
			log.Fatalf("SLIDES_MCP_PUBLIC_URL must be set when running on stdio")
		}
		server := tools.NewServer(base)
		log.Printf("Starting SlidesMCP server on stdio...")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := httpserver.New(logger, base)

	log.Printf("Starting SlidesMCP server on %s...", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
