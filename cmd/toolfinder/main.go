package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/ToolFinder/pkg/config"
	"github.com/NeuralTrust/ToolFinder/pkg/dependency_container"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/channel"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/cache/event"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/ToolFinder/pkg/infra/logger"
	_ "github.com/NeuralTrust/ToolFinder/pkg/infra/migrations"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/prometheus"
	"github.com/NeuralTrust/ToolFinder/pkg/server"
	"github.com/NeuralTrust/ToolFinder/pkg/server/router"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const reindexCommand = "reindex"

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	logger, err := infraLogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("failed to close database")
		}
	}()

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency:  cfg.Metrics.EnableLatency,
		EnablePerRoute: cfg.Metrics.EnablePerRoute,
	})

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:            cfg,
		Logger:         logger,
		DB:             db,
		EventsRegistry: event.Registry,
		EventsChannel:  channel.Channel(cfg.Redis.Channel),
	})
	if err != nil {
		logger.Fatalf("failed to initialize dependencies: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 && os.Args[1] == reindexCommand {
		code := runReindex(ctx, logger, container)
		stop()
		_ = db.Close()
		os.Exit(code)
	}

	container.MetricsWorker.StartWorkers(cfg.Metrics.Workers)
	if container.IndexQueue != nil {
		container.IndexQueue.StartWorkers(cfg.Embedding.IndexWorkers)
	}

	listenerCtx, cancelListener := context.WithCancel(ctx)
	defer cancelListener()
	go func() {
		logger.WithField("channel", container.EventsChannel).Info("listening for tool events")
		container.RedisListener.Listen(listenerCtx, container.EventsChannel)
	}()

	srv := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport, cfg.Server.SwaggerURL),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("error shutting down server")
	}
	cancelListener()
	if container.IndexQueue != nil {
		container.IndexQueue.Shutdown()
	}
	container.MetricsWorker.Shutdown()
	logger.Info("server gracefully stopped")
}

// runReindex embeds every tool that has no vector for the configured model
// and reports the outcome through the exit code.
func runReindex(ctx context.Context, logger *logrus.Logger, container *dependency_container.Container) int {
	report, err := container.ToolIndexer.Backfill(ctx)
	if err != nil {
		logger.WithError(err).Error("reindex failed")
		return 1
	}
	logger.WithFields(logrus.Fields{
		"total":   report.Total,
		"indexed": report.Indexed,
		"failed":  report.Failed,
	}).Info("reindex finished")
	if report.Failed > 0 {
		return 1
	}
	return 0
}
