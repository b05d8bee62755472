package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/client-portal-api/internal/models"
	"github.com/yukikurage/client-portal-api/internal/repository"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService manages the projects embedded in a profile. Every
// operation loads the caller's own profile, so a project ID belonging to
// another account is never reachable.
type ProjectService struct {
	profileRepo repository.ProfileRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(profileRepo repository.ProfileRepository) *ProjectService {
	return &ProjectService{
		profileRepo: profileRepo,
	}
}

// ProjectInput holds every writable field of a project.
type ProjectInput struct {
	Name      string
	Status    string
	Developer string
	DueDate   *time.Time
}

func (in ProjectInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Status) == "" ||
		strings.TrimSpace(in.Developer) == "" {
		return ErrMissingField
	}
	return nil
}

// AddProject appends a project with a new ID and returns the updated profile.
func (s *ProjectService) AddProject(accountID uint64, input ProjectInput) (*models.Profile, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	profile, err := findProfile(s.profileRepo, accountID)
	if err != nil {
		return nil, err
	}

	profile.AddProject(models.Project{
		Name:      input.Name,
		Status:    input.Status,
		Developer: input.Developer,
		DueDate:   input.DueDate,
	})

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}

	return profile, nil
}

// ListProjects returns the projects of an account in insertion order.
// A profile without projects yields an empty slice.
func (s *ProjectService) ListProjects(accountID uint64) ([]models.Project, error) {
	profile, err := findProfile(s.profileRepo, accountID)
	if err != nil {
		return nil, err
	}

	if profile.Projects == nil {
		return []models.Project{}, nil
	}
	return profile.Projects, nil
}

// UpdateProject overwrites every field of one project.
func (s *ProjectService) UpdateProject(accountID uint64, projectID string, input ProjectInput) (*models.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	profile, err := findProfile(s.profileRepo, accountID)
	if err != nil {
		return nil, err
	}

	project := profile.FindProject(projectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}

	project.Name = input.Name
	project.Status = input.Status
	project.Developer = input.Developer
	project.DueDate = input.DueDate

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	updated := *project
	return &updated, nil
}

// DeleteProject removes one project from the profile.
func (s *ProjectService) DeleteProject(accountID uint64, projectID string) error {
	profile, err := findProfile(s.profileRepo, accountID)
	if err != nil {
		return err
	}

	if !profile.RemoveProject(projectID) {
		return ErrProjectNotFound
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
