package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/yukikurage/client-portal-api/internal/config"
	"github.com/yukikurage/client-portal-api/internal/constants"
	"github.com/yukikurage/client-portal-api/internal/handlers"
	"github.com/yukikurage/client-portal-api/internal/middleware"
	"github.com/yukikurage/client-portal-api/internal/repository"
	"github.com/yukikurage/client-portal-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Client *handlers.ClientHandler
	Task   *handlers.TaskHandler
}

// New wires repositories, services and handlers on top of db and returns
// a ready to start HTTP server.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*http.Server, error) {
	tokens, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(accountRepo, profileRepo, tokens)
	profileService := services.NewProfileService(profileRepo)
	projectService := services.NewProjectService(profileRepo)
	taskService := services.NewTaskService(taskRepo)

	router := NewRouter(Handlers{
		Auth:   handlers.NewAuthHandler(authService, log),
		Client: handlers.NewClientHandler(authService, profileService, projectService, log),
		Task:   handlers.NewTaskHandler(taskService, log),
	}, tokens, log)

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           WithCORS(cfg.AllowedOrigins, router),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}, nil
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h Handlers, tokens middleware.TokenVerifier, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Client Portal API is running",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	api := r.Group("/api")

	// Client routes (protected)
	client := api.Group("")
	client.Use(middleware.RequireAuth(tokens, log))
	{
		client.GET("/client-info", h.Client.GetClientInfo)
		client.POST("/update-client", h.Client.UpdateClient)
		client.POST("/change-password", h.Client.ChangePassword)
		client.POST("/add-project", h.Client.AddProject)
		client.GET("/project-info", h.Client.ProjectInfo)
		client.POST("/update-project", h.Client.UpdateProject)
		client.DELETE("/delete-project/:projectId", h.Client.DeleteProject)
	}

	// Task routes (public)
	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.Task.ListTasks)
		tasks.POST("", h.Task.CreateTask)
		tasks.GET("/:id", h.Task.GetTask)
		tasks.PATCH("/:id", h.Task.UpdateTask)
		tasks.DELETE("/:id", h.Task.DeleteTask)
	}

	return r
}

// WithCORS allows browser calls from the configured frontend origins.
func WithCORS(allowedOrigins []string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(next)
}
