package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	pgRepo "project-board/internal/infra/adapter/persistence/postgres"
	"project-board/internal/infra/db"
	"project-board/internal/observability/metrics"
	"project-board/internal/pkg/config"
	"project-board/internal/repository"
	"project-board/internal/resilience/circuitbreaker"
)

// The worker runs the board's scheduled maintenance: pruning hashtags whose
// last referencing article is gone and refreshing the article-count gauge.

func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM articles LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := initLogger()

	cfg, err := config.LoadWorker()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	articles := pgRepo.NewArticleRepo(breaker)

	c := cron.New()
	if _, err := c.AddFunc(cfg.PruneSchedule, func() {
		pruneOrphanHashtags(logger, articles)
	}); err != nil {
		logger.Error("invalid prune schedule", slog.String("schedule", cfg.PruneSchedule), slog.Any("error", err))
		os.Exit(1)
	}
	if _, err := c.AddFunc(cfg.GaugeSchedule, func() {
		refreshArticleGauge(logger, articles)
	}); err != nil {
		logger.Error("invalid gauge schedule", slog.String("schedule", cfg.GaugeSchedule), slog.Any("error", err))
		os.Exit(1)
	}

	// Prime the gauge so scrapes before the first tick see a value.
	refreshArticleGauge(logger, articles)

	c.Start()
	logger.Info("worker started",
		slog.String("prune_schedule", cfg.PruneSchedule),
		slog.String("gauge_schedule", cfg.GaugeSchedule))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down worker...")
	<-c.Stop().Done()
	logger.Info("worker stopped")
}

func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func pruneOrphanHashtags(logger *slog.Logger, articles repository.ArticleRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pruned, err := articles.PruneOrphanHashtags(ctx)
	if err != nil {
		logger.Error("hashtag prune failed", slog.Any("error", err))
		return
	}
	metrics.RecordHashtagsPruned(pruned)
	logger.Info("hashtag prune completed", slog.Int64("pruned", pruned))
}

func refreshArticleGauge(logger *slog.Logger, articles repository.ArticleRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := articles.Count(ctx)
	if err != nil {
		logger.Error("article count failed", slog.Any("error", err))
		return
	}
	metrics.UpdateArticlesTotal(count)
}
