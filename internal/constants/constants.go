package constants

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ContextKeyAccountID is the gin context key holding the authenticated account ID.
const ContextKeyAccountID = "account_id"

// Authentication
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
	BcryptCost        = bcrypt.DefaultCost
	TokenTTL          = time.Hour
	BearerScheme      = "Bearer"
)

// Server
const (
	DefaultPort         = "5000"
	DefaultClientOrigin = "https://frontend-client-dashboard.vercel.app"
	ReadHeaderTimeout   = 10 * time.Second
	ShutdownTimeout     = 10 * time.Second
)
