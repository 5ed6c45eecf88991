package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cfu288/boinc-statistics-image-generator/internal/logging"
)

const (
	appName    = "boincstats"
	appVersion = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Error(newLogger(os.Stderr), "boincstats failed", err)
		os.Exit(1)
	}
}
