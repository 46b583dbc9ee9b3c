package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/employee-portal/internal/auth"
	"github.com/BruksfildServices01/employee-portal/internal/config"
	dbpkg "github.com/BruksfildServices01/employee-portal/internal/db"
	"github.com/BruksfildServices01/employee-portal/internal/limiter"
	"github.com/BruksfildServices01/employee-portal/internal/logging"
	"github.com/BruksfildServices01/employee-portal/internal/metrics"
	"github.com/BruksfildServices01/employee-portal/internal/routes"
	"github.com/BruksfildServices01/employee-portal/internal/storage"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	stores, err := dbpkg.OpenStores(cfg, true)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err), zap.String("driver", cfg.StoreDriver))
	}
	defer stores.Close()

	var loginLimiter limiter.Limiter = limiter.NewMemory(cfg.LoginRateLimit, cfg.LoginRateWindow)
	if cfg.RedisURL != "" {
		rdb, err := limiter.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid redis url", zap.Error(err))
		}
		defer rdb.Close()
		loginLimiter = limiter.NewRedis(rdb, "portal:", cfg.LoginRateLimit, cfg.LoginRateWindow)
	}

	var photos storage.ObjectStore
	if cfg.S3Enabled() {
		photos = storage.NewS3(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		logger.Info("S3_BUCKET not set, photo uploads disabled")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:       cfg,
		Log:          logger,
		Metrics:      metrics.New(),
		Accounts:     stores.Accounts,
		Employees:    stores.Employees,
		AuditLogs:    stores.AuditLogs,
		Store:        stores.Pinger,
		Tokens:       auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpire, cfg.JWTIssuer),
		Hasher:       auth.NewBcryptHasher(cfg.BcryptCost),
		LoginLimiter: loginLimiter,
		Photos:       photos,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("scope_policy", string(cfg.ScopePolicy)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
