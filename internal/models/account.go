package models

import (
	"sync"
	"time"

	"github.com/yukikurage/client-portal-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

type Account struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAccount builds an account whose password is already hashed.
func NewAccount(email, password string) (*Account, error) {
	account := &Account{Email: email}
	if err := account.SetPassword(password); err != nil {
		return nil, err
	}
	return account, nil
}

// SetPassword replaces the stored hash with a fresh salted bcrypt hash of password.
func (a *Account) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), constants.BcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("no-such-account"), constants.BcryptCost)
	return hash
})

// CheckDummyPassword does the bcrypt work of CheckPassword against a hash
// no account owns. Login calls it for unknown emails so both failures take
// the same time.
func CheckDummyPassword(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
}
