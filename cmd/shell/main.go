package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"vaxreg/internal/app"
	"vaxreg/internal/audit"
	"vaxreg/internal/platform/config"
	"vaxreg/internal/platform/logger"
	"vaxreg/internal/records/service"
	"vaxreg/internal/shell"
)

// main runs the interactive menu on stdin/stdout. Logs and audit lines go to
// stderr so they do not interleave with prompts.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.New(os.Stderr, config.LoggingConfig{}).Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}
	log := logger.New(os.Stderr, cfg.Logging)

	if err := run(cfg, log); err != nil {
		log.Error("shell stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := app.Open(ctx, cfg, log,
		service.WithAuditPublisher(audit.NewPublisher(audit.NewLogStore(log))),
	)
	if err != nil {
		return err
	}
	defer records.Close()

	return shell.New(records.Service, os.Stdin, os.Stdout).Run(ctx)
}
