// Package main runs the back-office maintenance CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tppb-bridge/backoffice/internal/cmd/backofficectl"
	"github.com/tppb-bridge/backoffice/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := backofficectl.Execute(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		config.Exitf("backofficectl: %v", err)
	}
}
