package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/louisbranch/dieroll/internal/cmd/roll"
	entrypoint "github.com/louisbranch/dieroll/internal/platform/cmd"
	"github.com/louisbranch/dieroll/internal/platform/config"
	"github.com/louisbranch/dieroll/internal/random"
)

// main rolls a batch of dice and prints the results.
func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:], os.Environ())
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ROLL] ")

	src, err := random.NewSource()
	if err != nil {
		config.Exitf("roll: %s", rollcmd.UserMessage(err, cfg.Locale))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoll, func(ctx context.Context) error {
		return rollcmd.Run(ctx, cfg, src, os.Stdout)
	})
	if err != nil {
		stop()
		config.Exitf("roll: %s", rollcmd.UserMessage(err, cfg.Locale))
	}
}
