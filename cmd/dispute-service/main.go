package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/escrowline/dispute-service/internal/config"
	"github.com/escrowline/dispute-service/internal/domain"
	publisher "github.com/escrowline/dispute-service/internal/infrastructure/kafka"
	"github.com/escrowline/dispute-service/internal/infrastructure/metrics"
	"github.com/escrowline/dispute-service/internal/infrastructure/migrate"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/repository"
	"github.com/escrowline/dispute-service/internal/scheduler"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.DisputeDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.DisputeDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	eventPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init dispute repo
	disputeRepo := repository.NewDefaultDisputeRepository(db)

	// The lifecycle machine shared by every transition writer. Interactive
	// operations live in internal/usecase and are embedded by the consuming
	// service; this process runs the autonomous side only.
	machine := domain.NewStateMachine(domain.Windows{
		Evidence: cfg.Lifecycle.EvidenceWindow,
		Decision: cfg.Lifecycle.DecisionWindow,
		Appeal:   cfg.Lifecycle.AppealWindow,
	})
	disputeMetrics := metrics.NewDisputeMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Deadline scheduler
	deadlineScheduler := scheduler.NewScheduler(
		disputeRepo,
		machine,
		eventPublisher,
		disputeMetrics,
		cfg.Lifecycle.SchedulerInterval,
		slog.Default(),
	)
	go deadlineScheduler.Start(ctx)

	// Metrics endpoint
	metricsAddr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	metricsServer := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}
	go func() {
		log.Printf("metrics server started on %s\n", metricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve metrics: %v\n", err)
		}
	}()

	<-ctx.Done()
	if err := metricsServer.Close(); err != nil {
		slog.Error("failed to close metrics server", "error", err.Error())
	}
	if err := eventPublisher.Close(); err != nil {
		slog.Error("failed to close kafka publisher", "error", err.Error())
	}
	os.Exit(0)
}
