package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-portal-api/internal/dto"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"github.com/yukikurage/client-portal-api/internal/middleware"
	"github.com/yukikurage/client-portal-api/internal/services"
	"go.uber.org/zap"
)

var errInvalidDueDate = errors.New("invalid due date")

// ClientHandler serves the authenticated client's profile and projects.
type ClientHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
	projectService *services.ProjectService
	log            *zap.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(
	authService *services.AuthService,
	profileService *services.ProfileService,
	projectService *services.ProjectService,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{
		authService:    authService,
		profileService: profileService,
		projectService: projectService,
		log:            log,
	}
}

// GetClientInfo returns the caller's profile.
func (h *ClientHandler) GetClientInfo(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(accountID)
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// UpdateClient changes the descriptive fields of the caller's profile.
// Fields left out of the body keep their value.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	type UpdateClientRequest struct {
		Name              *string `json:"name"`
		CompanySize       *string `json:"companySize"`
		PreferredLanguage *string `json:"preferredLanguage"`
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(accountID, services.UpdateProfileInput{
		Name:              req.Name,
		CompanySize:       req.CompanySize,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// ChangePassword replaces the caller's password.
func (h *ClientHandler) ChangePassword(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	type ChangePasswordRequest struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(accountID, services.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}

// AddProject appends a project to the caller's profile.
func (h *ClientHandler) AddProject(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	type AddProjectRequest struct {
		Name      string  `json:"name"`
		Status    string  `json:"status"`
		Developer string  `json:"developer"`
		DueDate   *string `json:"dueDate"`
	}

	var req AddProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	profile, err := h.projectService.AddProject(accountID, services.ProjectInput{
		Name:      req.Name,
		Status:    req.Status,
		Developer: req.Developer,
		DueDate:   dueDate,
	})
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddProjectResponse{
		Message:       "Project added successfully",
		ClientDetails: dto.ToProfileDTO(*profile),
	})
}

// ProjectInfo lists the caller's projects.
func (h *ClientHandler) ProjectInfo(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(accountID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			apierrors.NotFound(c, "No projects found for this client")
			return
		}
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// UpdateProject overwrites one of the caller's projects.
func (h *ClientHandler) UpdateProject(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	type UpdateProjectRequest struct {
		ProjectID string  `json:"projectId"`
		Name      string  `json:"name"`
		Status    string  `json:"status"`
		Developer string  `json:"developer"`
		DueDate   *string `json:"dueDate"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.ProjectID) == "" {
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeMissingField, "projectId is required")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	project, err := h.projectService.UpdateProject(accountID, req.ProjectID, services.ProjectInput{
		Name:      req.Name,
		Status:    req.Status,
		Developer: req.Developer,
		DueDate:   dueDate,
	})
	if err != nil {
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject removes one of the caller's projects.
func (h *ClientHandler) DeleteProject(c *gin.Context) {
	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(accountID, c.Param("projectId")); err != nil {
		h.respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
}

func (h *ClientHandler) accountID(c *gin.Context) (uint64, bool) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		apierrors.Forbidden(c, "")
	}
	return accountID, ok
}

// parseDueDate accepts RFC 3339 timestamps and plain dates. A null or
// empty value clears the date.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errInvalidDueDate
}

func (h *ClientHandler) respondClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidDueDate):
		apierrors.BadRequest(c, "dueDate must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
	case errors.Is(err, services.ErrMissingField):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeMissingField, "All fields are required")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidCredentials, "Old password is incorrect")
	case errors.Is(err, services.ErrWeakPassword):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeWeakPassword, "New password is too short")
	case errors.Is(err, services.ErrPasswordTooLong):
		apierrors.BadRequest(c, msgPasswordTooLong)
	case errors.Is(err, services.ErrAccountNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, "Client details not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		h.log.Error("client request failed", zap.String("path", c.FullPath()), zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
