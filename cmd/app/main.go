package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	apiHttp "github.com/regional-portal/geo-backend/internal/api/http"
	"github.com/regional-portal/geo-backend/internal/cache"
	"github.com/regional-portal/geo-backend/internal/config"
	"github.com/regional-portal/geo-backend/internal/db"
	"github.com/regional-portal/geo-backend/internal/metrics"
	"github.com/regional-portal/geo-backend/internal/queue/asynqserver"
	queueClient "github.com/regional-portal/geo-backend/internal/queue/client"
	"github.com/regional-portal/geo-backend/internal/repository"
	"github.com/regional-portal/geo-backend/internal/server"
	"github.com/regional-portal/geo-backend/internal/service"
	"github.com/regional-portal/geo-backend/internal/worker"
	"github.com/regional-portal/geo-backend/pkg/auth"
	"github.com/regional-portal/geo-backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting geo routing api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Fatal("redis connect problem", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Fatal("auth manager creation err", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics(registry)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)

	var publisher service.ResolutionPublisher = service.NopPublisher{}
	var asynqSrv *asynq.Server
	if cfg.Queue.Enabled {
		asynqClient := asynq.NewClientFromRedisClient(redisClient)
		restore := queueClient.SetClient(asynqClient)
		defer restore()
		publisher = queueClient.NewResolutionPublisher()

		workers := worker.NewWorkers(worker.Deps{Repos: repos})
		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg, workers)
		if err := asynqSrv.Start(mux); err != nil {
			logger.Fatal("asynq server start failed", zap.Error(err))
		}
		logger.Info("resolution event queue started")
	}

	services := service.NewServices(service.Deps{
		Repos:     repos,
		Publisher: publisher,
		Metrics:   appMetrics,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg, registry, map[string]apiHttp.HealthCheck{
		"mysql": dbMySQL.PingContext,
		"redis": func(ctx context.Context) error { return cache.Ping(ctx, redisClient) },
	})

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(appCtx, cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("addr", srv.Addr()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}
	stopApp()

	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	logger.Info("app stopped")
}
