// Course portal edge service: session termination, role-gated routing, and
// the course catalog for the learnhub marketplace.
//
// @title        Course Portal API
// @version      1.0
// @description  Authentication, session gating and catalog endpoints.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/learnhub/course-portal/internal/api"
	"github.com/learnhub/course-portal/internal/core/service"
	"github.com/learnhub/course-portal/internal/infrastructure/backend"
	"github.com/learnhub/course-portal/internal/infrastructure/config"
	mongodb "github.com/learnhub/course-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/learnhub/course-portal/internal/infrastructure/db/redis"
	"github.com/learnhub/course-portal/internal/infrastructure/queue"
	"github.com/learnhub/course-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is a development convenience; production supplies real env vars.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Services ---
	backendClient := backend.NewClient(cfg.BackendURL, 0, log)
	credentials := service.NewCredentialService(backendClient, log)
	codec := service.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL)
	courses := service.NewCourseService(mongodb.NewCourseRepository(db), log)

	auditRepo := mongodb.NewAuditRepository(db)
	audit := service.NewAuditTrailService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, audit, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Config:      cfg,
		Log:         log,
		Credentials: credentials,
		Codec:       codec,
		Courses:     courses,
		Audit:       dispatcher,
		AuditLog:    auditRepo,
		Revoker:     redisdb.NewRevocationStore(rdb),
		Mongo:       db,
		Redis:       rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
