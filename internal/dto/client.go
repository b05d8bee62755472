package dto

import (
	"time"

	"github.com/yukikurage/client-portal-api/internal/models"
)

// ProjectDTO represents a project embedded in a client profile
type ProjectDTO struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Developer string     `json:"developer"`
	DueDate   *time.Time `json:"dueDate"`
}

// ProfileDTO represents a client profile in API responses
type ProfileDTO struct {
	ID                uint64       `json:"id"`
	AccountID         uint64       `json:"accountId"`
	Name              string       `json:"name"`
	CompanySize       string       `json:"companySize"`
	PreferredLanguage string       `json:"preferredLanguage"`
	Projects          []ProjectDTO `json:"projects"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// RegisteredUserDTO is the user block of the registration response
type RegisteredUserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoggedInUserDTO is the user block of the login response, carrying a profile snapshot
type LoggedInUserDTO struct {
	ID                uint64       `json:"id"`
	Email             string       `json:"email"`
	Name              string       `json:"name"`
	CompanySize       string       `json:"companySize"`
	PreferredLanguage string       `json:"preferredLanguage"`
	Projects          []ProjectDTO `json:"projects"`
}

// RegisterResponse is returned by POST /auth/register
type RegisterResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"accessToken"`
	User    RegisteredUserDTO `json:"user"`
}

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"accessToken"`
	User    LoggedInUserDTO `json:"user"`
}

// AddProjectResponse is returned by POST /api/add-project
type AddProjectResponse struct {
	Message       string     `json:"message"`
	ClientDetails ProfileDTO `json:"clientDetails"`
}

// MessageResponse is a bare acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ToProjectDTO converts an embedded Project to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		Status:    project.Status,
		Developer: project.Developer,
		DueDate:   project.DueDate,
	}
}

// ToProjectDTOs converts projects in order, never returning nil
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:                profile.ID,
		AccountID:         profile.AccountID,
		Name:              profile.Name,
		CompanySize:       profile.CompanySize,
		PreferredLanguage: profile.PreferredLanguage,
		Projects:          ToProjectDTOs(profile.Projects),
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// ToLoggedInUserDTO merges account and profile into the login user block.
// A zero profile yields empty strings and an empty project list.
func ToLoggedInUserDTO(account models.Account, profile models.Profile) LoggedInUserDTO {
	return LoggedInUserDTO{
		ID:                account.ID,
		Email:             account.Email,
		Name:              profile.Name,
		CompanySize:       profile.CompanySize,
		PreferredLanguage: profile.PreferredLanguage,
		Projects:          ToProjectDTOs(profile.Projects),
	}
}
