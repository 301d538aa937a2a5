package routes

import (
	"fmt"

	"app-builder-backend/internal/api/handlers"
	"app-builder-backend/internal/api/middleware"
	"app-builder-backend/internal/auth"
	"app-builder-backend/internal/config"
	"app-builder-backend/internal/metrics"
	"app-builder-backend/internal/repository"
	"app-builder-backend/internal/service"
	"app-builder-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Infrastructure carries the process-level collaborators chosen at startup
type Infrastructure struct {
	Artifacts storage.ArtifactStore
	Locker    service.ProjectLocker
	Gateway   service.PlatformGatewayInterface
	Generator service.GeneratorInterface
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, infra Infrastructure) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.GinMiddleware())

	validator := validator.New()

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)

	// Services
	if infra.Gateway == nil {
		infra.Gateway = service.NewPlatformGateway(cfg)
	}
	if infra.Generator == nil {
		infra.Generator = service.NewWorkersAIGenerator(cfg)
	}
	if infra.Locker == nil {
		infra.Locker = service.NewMemoryProjectLocker()
	}
	chatService := service.NewChatService(chatRepo, projectRepo, infra.Generator, validator)
	buildService := service.NewBuildService(infra.Gateway, infra.Generator, chatService, infra.Artifacts, cfg.CodeBucket)
	teardownService := service.NewTeardownService(infra.Gateway, infra.Artifacts)
	projectService := service.NewProjectService(projectRepo, buildService, teardownService, infra.Artifacts, infra.Locker, validator, cfg.BuildTimeout())

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("init auth: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, infra.Gateway)
	projectHandler := handlers.NewProjectHandler(projectService)
	chatHandler := handlers.NewChatHandler(chatService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/build", projectHandler.BuildProject)
			projects.GET("/:id/files", projectHandler.ListProjectFiles)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		chat := v1.Group("/chat")
		{
			chat.POST("", chatHandler.PostMessage)
			chat.POST("/save-assistant", chatHandler.SaveAssistantMessage)
			chat.GET("/:projectId/history", chatHandler.GetHistory)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
