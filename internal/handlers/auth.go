package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-portal-api/internal/dto"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"github.com/yukikurage/client-portal-api/internal/services"
	"go.uber.org/zap"
)

const msgPasswordTooLong = "Password must be at most 72 bytes"

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Register opens a new account with its client profile.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email             string `json:"email"`
		Password          string `json:"password"`
		Name              string `json:"name"`
		CompanySize       string `json:"companySize"`
		PreferredLanguage string `json:"preferredLanguage"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(services.RegisterInput{
		Email:             req.Email,
		Password:          req.Password,
		Name:              req.Name,
		CompanySize:       req.CompanySize,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		h.respondAuthError(c, err, "All fields are required")
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message: "Registration successful!",
		Token:   result.Token,
		User: dto.RegisteredUserDTO{
			ID:    result.Account.ID,
			Email: result.Account.Email,
			Name:  result.Profile.Name,
		},
	})
}

// Login authenticates an account and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err, "Email and password are required")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful!",
		Token:   result.Token,
		User:    dto.ToLoggedInUserDTO(*result.Account, *result.Profile),
	})
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error, missingFieldMsg string) {
	switch {
	case errors.Is(err, services.ErrMissingField):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeMissingField, missingFieldMsg)
	case errors.Is(err, services.ErrDuplicateAccount):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeDuplicateAccount, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, services.ErrPasswordTooLong):
		apierrors.BadRequest(c, msgPasswordTooLong)
	default:
		h.log.Error("auth request failed", zap.String("path", c.FullPath()), zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
