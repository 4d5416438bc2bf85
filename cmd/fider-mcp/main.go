// fider-mcp serves the Fider REST API as MCP tools over stdio. All logging
// goes to stderr; stdout carries nothing but JSON-RPC frames.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fider-contrib/fider-mcp/internal/config"
	"github.com/fider-contrib/fider-mcp/internal/fider"
	"github.com/fider-contrib/fider-mcp/internal/paths"
	"github.com/fider-contrib/fider-mcp/internal/protocol"
	"github.com/fider-contrib/fider-mcp/internal/server"
)

func main() {
	logger := log.New(os.Stderr, "fider-mcp: ", log.LstdFlags)

	configPath := flag.String("config", paths.ConfigFile(), "path to the TOML config file")
	baseURL := flag.String("base-url", "", "Fider instance URL (overrides environment and config file)")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		logger.Fatalf("loading config: %v", err)
	}
	if *baseURL != "" {
		cfg.BaseURL = strings.TrimRight(*baseURL, "/")
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("Fider MCP server started")
	logger.Printf("Base URL: %s", cfg.BaseURL)
	if cfg.APIKey != "" {
		logger.Printf("API Key configured: Yes")
	} else {
		logger.Printf("API Key configured: No")
	}

	srv := server.New(fider.New(cfg), logger)
	transport := protocol.NewTransport(os.Stdin, os.Stdout, logger, srv.Handle)
	if err := transport.Run(ctx); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
