// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

// Command api is the entry point for the Argus content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize JWT signing and object storage.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/argusintel/argus/internal/api"
	"github.com/argusintel/argus/internal/content/faq"
	"github.com/argusintel/argus/internal/content/offering"
	"github.com/argusintel/argus/internal/content/page"
	"github.com/argusintel/argus/internal/content/resource"
	"github.com/argusintel/argus/internal/content/setting"
	"github.com/argusintel/argus/internal/content/solution"
	"github.com/argusintel/argus/internal/content/team"
	"github.com/argusintel/argus/internal/media"
	"github.com/argusintel/argus/internal/platform/config"
	"github.com/argusintel/argus/internal/platform/constants"
	"github.com/argusintel/argus/internal/platform/migration"
	"github.com/argusintel/argus/internal/platform/pagecache"
	pgstore "github.com/argusintel/argus/internal/platform/postgres"
	redisstore "github.com/argusintel/argus/internal/platform/redis"
	"github.com/argusintel/argus/internal/platform/sec"
	"github.com/argusintel/argus/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "argus"))
	slog.SetDefault(log)

	log.Info("[Argus] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "argus"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. JWT Signing ────────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Object Storage ─────────────────────────────────────────────────
	// An S3-compatible bucket (Cloudflare R2 in production) backs the media
	// library. Deployments without a bucket run with uploads disabled.
	// storageBackend stays a nil interface when no bucket is configured so
	// the media service can detect the disabled state.
	var storageBackend media.ObjectStorage
	var objectStorage *media.S3Storage
	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(startupCtx,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
			),
		)
		must(log, err, "load s3 credentials")

		s3Client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
			if cfg.S3Endpoint != "" {
				options.BaseEndpoint = aws.String(cfg.S3Endpoint)
			}
			options.UsePathStyle = true
		})
		objectStorage = media.NewS3Storage(s3Client, cfg.S3Bucket, cfg.MediaBaseURL)
		storageBackend = objectStorage
	} else {
		log.Warn("media_storage_disabled", slog.String("reason", "S3_BUCKET not configured"))
	}

	// ── 8. Health Handlers ────────────────────────────────────────────────
	healthDeps := api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}
	if objectStorage != nil {
		healthDeps.CheckStorage = func() error {
			return objectStorage.Healthcheck(context.Background())
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	pageCache := pagecache.NewRedisInvalidator(rdb, log)

	userRepository := auth.NewPostgresUserRepository(pool)
	sessionRepository := auth.NewPostgresSessionRepository(pool)
	resetTokens := auth.NewRedisResetTokenRepository(rdb)
	verifyTokens := auth.NewRedisVerifyTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokens, verifyTokens, jwtSvc, cfg.SiteURL, log)

	offeringService := offering.NewService(offering.NewPostgresRepository(pool), pageCache, log)
	solutionService := solution.NewService(solution.NewPostgresRepository(pool), pageCache, log)
	resourceService := resource.NewService(resource.NewPostgresRepository(pool), pageCache, log)
	faqService := faq.NewService(faq.NewPostgresRepository(pool), pageCache, log)
	teamService := team.NewService(team.NewPostgresRepository(pool), pageCache, log)
	pageService := page.NewService(page.NewPostgresRepository(pool), pageCache, log)
	settingService := setting.NewService(setting.NewPostgresRepository(pool), pageCache, log)
	mediaService := media.NewService(media.NewPostgresRepository(pool), storageBackend, cfg.MediaBaseURL, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Offering:  offering.NewHandler(offeringService),
		Solution:  solution.NewHandler(solutionService),
		Resource:  resource.NewHandler(resourceService),
		FAQ:       faq.NewHandler(faqService),
		Team:      team.NewHandler(teamService),
		Page:      page.NewHandler(pageService),
		Setting:   setting.NewHandler(settingService),
		Media:     media.NewHandler(mediaService),
	}

	// The server context outlives startup: the rate limiter prunes its
	// per-client state on it for the life of the process.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
