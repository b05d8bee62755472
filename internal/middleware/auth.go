package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/client-portal-api/internal/constants"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to an account ID.
type TokenVerifier interface {
	Verify(token string) (uint64, error)
}

const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token."
)

// RequireAuth checks the Authorization header for a valid bearer token
func RequireAuth(tokens TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			log.Debug("missing bearer token", zap.String("path", c.Request.URL.Path))
			apierrors.Forbidden(c, msgNoToken)
			return
		}

		accountID, err := tokens.Verify(token)
		if err != nil {
			log.Warn("token verification failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			apierrors.Forbidden(c, msgInvalidToken)
			return
		}

		// Store account ID in context for handlers
		c.Set(constants.ContextKeyAccountID, accountID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	prefix := constants.BearerScheme + " "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// GetAccountID retrieves the authenticated account ID from context
func GetAccountID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyAccountID)
	if !exists {
		return 0, false
	}

	accountID, ok := value.(uint64)
	if !ok || accountID == 0 {
		return 0, false
	}
	return accountID, true
}
