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

	"app-builder-backend/internal/api/routes"
	"app-builder-backend/internal/config"
	"app-builder-backend/internal/database"
	"app-builder-backend/internal/repository"
	"app-builder-backend/internal/service"
	"app-builder-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "app-builder-backend/docs" // This is needed for swag
)

//	@title			App Builder Backend API
//	@version		1.0
//	@description	Turns a project conversation into a generated app, provisions its database and deploys it to the edge platform.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

// staleBuildGrace is added to the build timeout before the reaper gives up on a build
const staleBuildGrace = time.Minute

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	artifacts, err := storage.NewFromConfig(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize artifact storage:", err)
	}

	locker, closeLocker := newLocker(cfg)
	defer closeLocker()

	router, err := routes.SetupRoutes(db, cfg, routes.Infrastructure{
		Artifacts: artifacts,
		Locker:    locker,
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	reaper := service.NewBuildReaper(repository.NewProjectRepository(db), cfg.BuildTimeout()+staleBuildGrace)
	if err := reaper.Start(cfg.BuildReaperSchedule); err != nil {
		logrus.Fatal("Failed to start build reaper:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	// In-flight builds run to completion or to their own deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.BuildTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown did not complete")
	}
	<-reaper.Stop().Done()
}

// newLocker picks the Redis lock when REDIS_URL is set, otherwise a process-local one
func newLocker(cfg *config.Config) (service.ProjectLocker, func()) {
	if cfg.RedisURL == "" {
		logrus.Info("REDIS_URL not set, using in-process project locks")
		return service.NewMemoryProjectLocker(), func() {}
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Invalid REDIS_URL:", err)
	}
	client := redis.NewClient(opts)
	return service.NewRedisProjectLocker(client, cfg.BuildTimeout()+staleBuildGrace), func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close redis client")
		}
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
