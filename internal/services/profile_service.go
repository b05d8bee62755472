package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/client-portal-api/internal/models"
	"github.com/yukikurage/client-portal-api/internal/repository"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("client details not found")

// ProfileService reads and edits the profile owned by an account.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// UpdateProfileInput carries the fields to change; nil fields are left as they are.
type UpdateProfileInput struct {
	Name              *string
	CompanySize       *string
	PreferredLanguage *string
}

// GetProfile returns the profile of an account.
func (s *ProfileService) GetProfile(accountID uint64) (*models.Profile, error) {
	return findProfile(s.profileRepo, accountID)
}

// UpdateProfile applies a partial update to the profile of an account.
func (s *ProfileService) UpdateProfile(accountID uint64, input UpdateProfileInput) (*models.Profile, error) {
	profile, err := findProfile(s.profileRepo, accountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.CompanySize != nil {
		profile.CompanySize = *input.CompanySize
	}
	if input.PreferredLanguage != nil {
		profile.PreferredLanguage = *input.PreferredLanguage
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// findProfile maps a missing row to ErrProfileNotFound.
func findProfile(repo repository.ProfileRepository, accountID uint64) (*models.Profile, error) {
	profile, err := repo.FindByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}
