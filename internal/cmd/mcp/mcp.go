// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dieroll/internal/platform/cmd"
	"github.com/louisbranch/dieroll/internal/random"
	mcpservice "github.com/louisbranch/dieroll/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr  string `env:"DIEROLL_MCP_HTTP_ADDR"  envDefault:"localhost:8081"`
	Transport string `env:"DIEROLL_MCP_TRANSPORT"  envDefault:"stdio"`
	MaxAmount int    `env:"DIEROLL_MCP_MAX_AMOUNT" envDefault:"1000"`
}

// ParseConfig parses the given environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, environ []string) (Config, error) {
	var cfg Config
	err := entrypoint.ParseConfigFromEnviron(&cfg, environ, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
		fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
		fs.IntVar(&cfg.MaxAmount, "max-amount", cfg.MaxAmount, "largest amount accepted by roll_dice")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP dice server with an entropy-seeded random source.
func Run(ctx context.Context, cfg Config) error {
	src, err := random.NewSource()
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			Transport: cfg.Transport,
			HTTPAddr:  cfg.HTTPAddr,
			MaxAmount: cfg.MaxAmount,
		}, src)
	})
}
