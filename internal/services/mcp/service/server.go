package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/dieroll/internal/core/dice"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "dieroll MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Transport kinds accepted by Run.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	HTTPAddr  string
	// MaxAmount caps the dice rolled by one tool call; zero applies the domain default.
	MaxAmount int
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server whose dice tools draw from src.
func New(src dice.Source, maxAmount int) (*Server, error) {
	if src == nil {
		return nil, fmt.Errorf("random source is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	if err := registerDiceTools(mcpServerRegistrationAdapter{server: mcpServer}, src, maxAmount); err != nil {
		return nil, fmt.Errorf("register dice tools: %w", err)
	}
	return &Server{mcpServer: mcpServer}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config, src dice.Source) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := New(src, cfg.MaxAmount)
	if err != nil {
		return err
	}
	if cfg.Transport == TransportHTTP {
		return server.ListenAndServe(ctx, cfg.HTTPAddr)
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
