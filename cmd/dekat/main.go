package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/adapter/cuacaapi"
	httpadapter "github.com/candra1525/DEKAT-APPS-CENTRAL/internal/adapter/http"
	kafkaadapter "github.com/candra1525/DEKAT-APPS-CENTRAL/internal/adapter/kafka"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/config"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/observability"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/repository"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/scheduler"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/screen"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/viewmodel"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var api domain.CuacaAPI = cuacaapi.NewClient(cfg.APIBaseURL, metrics, logger)
	if cfg.BreakerEnabled {
		api = cuacaapi.NewBreakerClient(api, metrics, logger)
		logger.Info("circuit breaker enabled")
	}

	var audit repository.AuditPublisher
	var writer *kafkaadapter.Writer
	if cfg.AuditEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		audit = writer
		logger.Info("deletion audit enabled", "topic", cfg.KafkaAuditTopic, "brokers", cfg.KafkaBrokers)
	}

	repo := repository.New(api, audit, logger, metrics)
	vm := viewmodel.New(repo)
	scr := screen.New(vm, screen.NewTextRenderer(os.Stdout, true), clockwork.NewRealClock(), logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if cfg.HTTPAddr != "" {
		srv = httpadapter.NewServer(cfg.HTTPAddr, scr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	var sched *scheduler.Scheduler
	if cfg.AutoRefreshInterval > 0 {
		sched = scheduler.New(scr, cfg.AutoRefreshInterval, logger)
		if err := sched.Start(); err != nil {
			logger.Error("auto refresh not started", "error", err)
			sched = nil
		}
	}

	go readCommands(os.Stdin, scr, stop, logger)

	if err := scr.Run(ctx); err != nil {
		logger.Error("screen error", "error", err)
	}
	logger.Info("shutting down")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
