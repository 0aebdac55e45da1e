package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hrmportal/internal/app/cli"
	"hrmportal/internal/platform/config"
	"hrmportal/internal/platform/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, getLogLevel(cfg.LogLevel), "text")

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "hrmctl:", err)
		os.Exit(1)
	}

	app, err := cli.New(cfg, os.Stdin, os.Stdout, os.Stderr, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hrmctl:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "hrmctl:", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// getLogLevel keeps the CLI quiet unless a level was asked for explicitly.
func getLogLevel(level string) string {
	if os.Getenv("LOG_LEVEL") == "" {
		return "warn"
	}
	return level
}
