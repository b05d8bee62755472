package repository

import (
	"github.com/yukikurage/client-portal-api/internal/models"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByAccountID finds the profile owned by an account
func (r *GormProfileRepository) FindByAccountID(accountID uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update saves the whole profile row. Concurrent writers to the same
// profile are last-writer-wins.
func (r *GormProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
