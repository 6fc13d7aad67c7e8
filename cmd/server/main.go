package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"vaxreg/internal/app"
	"vaxreg/internal/audit"
	"vaxreg/internal/platform/config"
	"vaxreg/internal/platform/httpserver"
	"vaxreg/internal/platform/logger"
	"vaxreg/internal/platform/metrics"
	"vaxreg/internal/records/handler"
	"vaxreg/internal/records/service"
	httptransport "vaxreg/internal/transport/http"
)

// main wires config, the record store and the HTTP API, then runs the server
// and the audit worker until SIGINT or SIGTERM.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.New(os.Stderr, config.LoggingConfig{}).Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.Logging)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	auditPublisher := audit.NewAsyncPublisher(cfg.Audit.Buffer)
	auditWorker := audit.NewWorker(audit.NewLogStore(log), auditPublisher.Events(), log)

	records, err := app.Open(ctx, cfg, log,
		service.WithAuditPublisher(auditPublisher),
		service.WithMetrics(metrics.New(reg)),
	)
	if err != nil {
		return err
	}
	defer records.Close()

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:   log,
		Gatherer: reg,
		Health:   records.Health,
		Modules:  []httptransport.Registrar{handler.New(records.Service, log)},
	})
	srv := httpserver.New(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return auditWorker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting vaxreg", "addr", cfg.Server.Addr, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
