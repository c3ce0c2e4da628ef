// Package main starts the back-office HTTP service process lifecycle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	backofficecmd "github.com/tppb-bridge/backoffice/internal/cmd/backoffice"
	"github.com/tppb-bridge/backoffice/internal/platform/config"
)

func main() {
	cfg, err := backofficecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := backofficecmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("failed to serve: %v", err)
	}
}
