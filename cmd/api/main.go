package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"project-board/internal/common/pagination"
	pgRepo "project-board/internal/infra/adapter/persistence/postgres"
	"project-board/internal/infra/db"
	"project-board/internal/observability/tracing"
	"project-board/internal/pkg/config"
	"project-board/internal/resilience/circuitbreaker"

	artUC "project-board/internal/usecase/article"
	cmtUC "project-board/internal/usecase/comment"
	userUC "project-board/internal/usecase/user"

	hhttp "project-board/internal/handler/http"
	harticle "project-board/internal/handler/http/article"
	hauth "project-board/internal/handler/http/auth"
	hcomment "project-board/internal/handler/http/comment"
	"project-board/internal/handler/http/middleware"
	"project-board/internal/handler/http/requestid"
	huser "project-board/internal/handler/http/user"
)

func main() {
	logger := initLogger()
	validateJWTSecret(logger)

	cfg, err := config.LoadServer()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.Init(ctx)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	handler, limiter := setupServer(logger, database, breaker, cfg)
	defer limiter.Close()

	runServer(ctx, logger, handler, cfg)
}

// initLogger initializes a structured JSON logger from LOG_LEVEL.
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

// validateJWTSecret enforces a present, non-trivial JWT_SECRET at startup.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires repositories, services, routes and the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, breaker *circuitbreaker.DBCircuitBreaker, cfg config.Server) (http.Handler, *middleware.RateLimiter) {
	articleRepo := pgRepo.NewArticleRepo(breaker)
	commentRepo := pgRepo.NewArticleCommentRepo(breaker)
	userRepo := pgRepo.NewUserAccountRepo(breaker)

	artSvc := &artUC.Service{Articles: articleRepo, Comments: commentRepo, Users: userRepo, Logger: logger}
	cmtSvc := &cmtUC.Service{Comments: commentRepo, Articles: articleRepo, Users: userRepo, Logger: logger}
	userSvc := &userUC.Service{Users: userRepo, Logger: logger}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	mux.Handle("GET    /healthz", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: getVersion()})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())
	mux.Handle("POST   /auth/login", hauth.LoginHandler(userSvc))
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcomment.Register(mux, cmtSvc)
	huser.Register(mux, userSvc)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)

	// Innermost to outermost: metrics close to the handler, request id first
	// so every later stage can log it.
	var handler http.Handler = hauth.Authz(mux)
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = limiter.Limit(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)

	return handler, limiter
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// runServer serves the API and a separate metrics listener until the context
// is cancelled, then shuts both down gracefully.
func runServer(ctx context.Context, logger *slog.Logger, handler http.Handler, cfg config.Server) {
	apiSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", hhttp.MetricsHandler())
	metricsSrv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", getVersion()))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics listener starting", slog.String("addr", cfg.MetricsAddr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("api shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
