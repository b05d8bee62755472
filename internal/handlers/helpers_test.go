package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"github.com/yukikurage/client-portal-api/internal/middleware"
	"github.com/yukikurage/client-portal-api/internal/models"
	"github.com/yukikurage/client-portal-api/internal/repository"
	"github.com/yukikurage/client-portal-api/internal/services"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type handlerTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *services.TokenService
	authService *services.AuthService
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.Account{}, &models.Profile{}, &models.Task{}))

	log := zaptest.NewLogger(t)
	tokens, err := services.NewTokenService("handler-secret")
	require.NoError(t, err)

	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	authService := services.NewAuthService(accountRepo, profileRepo, tokens)

	authHandler := NewAuthHandler(authService, log)
	clientHandler := NewClientHandler(
		authService,
		services.NewProfileService(profileRepo),
		services.NewProjectService(profileRepo),
		log,
	)
	taskHandler := NewTaskHandler(services.NewTaskService(repository.NewTaskRepository(db)), log)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens, log))
	protected.GET("/client-info", clientHandler.GetClientInfo)
	protected.POST("/update-client", clientHandler.UpdateClient)
	protected.POST("/change-password", clientHandler.ChangePassword)
	protected.POST("/add-project", clientHandler.AddProject)
	protected.GET("/project-info", clientHandler.ProjectInfo)
	protected.POST("/update-project", clientHandler.UpdateProject)
	protected.DELETE("/delete-project/:projectId", clientHandler.DeleteProject)

	api.GET("/tasks", taskHandler.ListTasks)
	api.GET("/tasks/:id", taskHandler.GetTask)
	api.POST("/tasks", taskHandler.CreateTask)
	api.PATCH("/tasks/:id", taskHandler.UpdateTask)
	api.DELETE("/tasks/:id", taskHandler.DeleteTask)

	return handlerTestEnv{
		db:          db,
		router:      r,
		tokens:      tokens,
		authService: authService,
	}
}

func (env handlerTestEnv) do(t *testing.T, method, url string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	switch p := payload.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case string:
		body = bytes.NewReader([]byte(p))
	default:
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerAccount opens an account through the service and returns its token.
func (env handlerTestEnv) registerAccount(t *testing.T, email, password string) (uint64, string) {
	t.Helper()

	result, err := env.authService.Register(services.RegisterInput{
		Email:             email,
		Password:          password,
		Name:              "Acme",
		CompanySize:       "10-50",
		PreferredLanguage: "en",
	})
	require.NoError(t, err)
	return result.Account.ID, result.Token
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var body apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}


func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
