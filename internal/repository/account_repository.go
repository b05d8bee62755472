package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/client-portal-api/internal/models"
	"gorm.io/gorm"
)

// GormAccountRepository is a GORM implementation of AccountRepository
type GormAccountRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateAccount is returned when creating an account fails inside the registration transaction.
	ErrCreateAccount = errors.New("account repository: create account failed")
	// ErrCreateProfile is returned when creating a profile fails inside the registration transaction.
	ErrCreateProfile = errors.New("account repository: create profile failed")
)

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

// CreateWithProfile creates an account and the profile linked to it atomically.
func (r *GormAccountRepository) CreateWithProfile(account *models.Account, profile *models.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateAccount, err)
		}

		profile.AccountID = account.ID

		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateProfile, err)
		}

		return nil
	})
}

// FindByID finds an account by ID
func (r *GormAccountRepository) FindByID(id uint64) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by email
func (r *GormAccountRepository) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdatePasswordHash replaces the password hash in a single-row update
func (r *GormAccountRepository) UpdatePasswordHash(id uint64, passwordHash string) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
