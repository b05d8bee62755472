package repository

import (
	"github.com/yukikurage/client-portal-api/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// CreateWithProfile creates an account and its profile within a single transaction.
	CreateWithProfile(account *models.Account, profile *models.Profile) error

	// FindByID finds an account by ID
	FindByID(id uint64) (*models.Account, error)

	// FindByEmail finds an account by email
	FindByEmail(email string) (*models.Account, error)

	// UpdatePasswordHash replaces the stored password hash of an account
	UpdatePasswordHash(id uint64, passwordHash string) error
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByAccountID finds the profile owned by an account
	FindByAccountID(accountID uint64) (*models.Profile, error)

	// Update saves every column of a profile, including its embedded projects
	Update(profile *models.Profile) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List retrieves all tasks in creation order
	List() ([]models.Task, error)

	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task, returning gorm.ErrRecordNotFound when nothing matched
	Delete(id uint64) error
}
