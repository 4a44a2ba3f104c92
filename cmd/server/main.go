// @title           Medical System Gateway API
// @version         1.0
// @description     Session-terminating admin gateway in front of the medical records REST API.
// @BasePath        /api
//
// @securityDefinitions.apikey SessionCookie
// @in   cookie
// @name mrs_session
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sokol-matija/medical-system-gateway/internal/api"
	"github.com/sokol-matija/medical-system-gateway/internal/core/service"
	"github.com/sokol-matija/medical-system-gateway/internal/infrastructure/config"
	mongodb "github.com/sokol-matija/medical-system-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/sokol-matija/medical-system-gateway/internal/infrastructure/db/redis"
	"github.com/sokol-matija/medical-system-gateway/internal/infrastructure/queue"
	"github.com/sokol-matija/medical-system-gateway/internal/upstream"
	"github.com/sokol-matija/medical-system-gateway/internal/upstream/records"
	"github.com/sokol-matija/medical-system-gateway/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Session vault (Redis) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	vault := redisdb.NewSessionVault(rdb)

	// --- Audit store (MongoDB) ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	auditRepo := mongodb.NewAuditRepository(db)
	auditService := service.NewAuditService(auditRepo, log)
	auditDispatcher := queue.NewDispatcher(0, auditService, log)
	auditDispatcher.Start(ctx)

	// --- Session and auth services ---
	sessions := service.NewSessionService(vault, cfg.Session.MaxTTL, log)

	transport := upstream.NewTransport(nil, vault, sessions, auditDispatcher, log)
	recordsClient := records.NewClient(cfg.Upstream.BaseURL, transport, cfg.Upstream.Timeout, log)

	auth := service.NewAuthService(recordsClient, sessions, auditDispatcher, service.BypassConfig{
		Enabled:      cfg.Bypass.Enabled,
		Username:     cfg.Bypass.Username,
		PasswordHash: cfg.Bypass.PasswordHash,
		TokenSecret:  cfg.Bypass.TokenSecret,
		TokenTTL:     cfg.Bypass.TokenTTL,
	}, log)

	if cfg.Bypass.Enabled {
		log.Warn().Str("username", cfg.Bypass.Username).Msg("local login bypass is ENABLED")
	}

	e := api.NewRouter(api.Dependencies{
		Config:   cfg,
		Logger:   log,
		Sessions: sessions,
		Auth:     auth,
		Records:  recordsClient,
		Audit:    auditDispatcher,
		Mongo:    db,
		Redis:    rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
