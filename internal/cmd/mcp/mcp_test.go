package mcp

import (
	"context"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.MaxAmount != 1000 {
		t.Fatalf("expected default max amount 1000, got %d", cfg.MaxAmount)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	environ := []string{
		"DIEROLL_MCP_HTTP_ADDR=env-http",
		"DIEROLL_MCP_MAX_AMOUNT=50",
	}
	args := []string{"-http-addr", "flag-http", "-transport", "http"}
	cfg, err := ParseConfig(fs, args, environ)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-http" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if cfg.MaxAmount != 50 {
		t.Fatalf("expected env max amount 50, got %d", cfg.MaxAmount)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil, []string{"DIEROLL_MCP_MAX_AMOUNT=lots"}); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	t.Setenv("DIEROLL_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{Transport: "smoke-signal"})
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("expected unsupported transport error, got %v", err)
	}
}
