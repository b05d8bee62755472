package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/client-portal-api/internal/constants"
	"github.com/yukikurage/client-portal-api/internal/models"
	"github.com/yukikurage/client-portal-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMissingField         = errors.New("all fields are required")
	ErrDuplicateAccount     = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrWeakPassword         = errors.New("new password is too short")
	ErrPasswordTooLong      = errors.New("password is longer than 72 bytes")
	ErrAccountNotFound      = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration, login and password changes.
type AuthService struct {
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
	tokens      *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repository.AccountRepository, profileRepo repository.ProfileRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
	}
}

// RegisterInput represents the required information to open an account.
type RegisterInput struct {
	Email             string
	Password          string
	Name              string
	CompanySize       string
	PreferredLanguage string
}

// AuthResult is returned by a successful Register or Login.
type AuthResult struct {
	Account *models.Account
	Profile *models.Profile
	Token   string
}

// Register creates an account together with its profile and issues a token.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.CompanySize) == "" ||
		strings.TrimSpace(input.PreferredLanguage) == "" {
		return nil, ErrMissingField
	}

	if len(input.Password) > constants.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	if _, err := s.accountRepo.FindByEmail(email); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	account, err := models.NewAccount(email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToHashPassword, err)
	}

	profile := &models.Profile{
		Name:              input.Name,
		CompanySize:       input.CompanySize,
		PreferredLanguage: input.PreferredLanguage,
		Projects:          []models.Project{},
	}

	if err := s.accountRepo.CreateWithProfile(account, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && errors.Is(err, repository.ErrCreateAccount) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to complete registration: %w", err)
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToIssueToken, err)
	}

	return &AuthResult{Account: account, Profile: profile, Token: token}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the account with its profile.
// An unknown email and a wrong password produce the same error. A missing
// profile is reported as an empty one.
func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrMissingField
	}

	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			models.CheckDummyPassword(input.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if !account.CheckPassword(input.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToIssueToken, err)
	}

	profile, err := s.profileRepo.FindByAccountID(account.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find profile: %w", err)
		}
		profile = &models.Profile{AccountID: account.ID, Projects: []models.Project{}}
	}

	return &AuthResult{Account: account, Profile: profile, Token: token}, nil
}

// ChangePasswordInput holds the current and the replacement password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// ChangePassword re-hashes and stores a new password after checking the old one.
func (s *AuthService) ChangePassword(accountID uint64, input ChangePasswordInput) error {
	if input.OldPassword == "" || input.NewPassword == "" {
		return ErrMissingField
	}

	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	if !account.CheckPassword(input.OldPassword) {
		return ErrInvalidCredentials
	}

	if len(input.NewPassword) < constants.MinPasswordLength {
		return ErrWeakPassword
	}
	if len(input.NewPassword) > constants.MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	if err := account.SetPassword(input.NewPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToHashPassword, err)
	}

	if err := s.accountRepo.UpdatePasswordHash(account.ID, account.PasswordHash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
