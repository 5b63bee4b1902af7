package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"blogmood/internal/app"
	"blogmood/internal/config"
	"blogmood/internal/logging"
)

type options struct {
	Member string `short:"m" long:"member" description:"Display name of the member whose blog to analyze"`
	Config string `short:"c" long:"config" description:"Path to the YAML configuration file" env:"BLOGMOOD_CONFIG"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if opts.Member == "" {
		fmt.Fprintln(os.Stderr, "no member specified; use --member to choose whose blog to analyze")
		parser.WriteHelp(os.Stderr)
		return
	}

	cfg := config.Load(opts.Config)
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, opts.Member); err != nil {
		logger.Error("run failed", "member", opts.Member, "error", err)
		os.Exit(1)
	}
}
