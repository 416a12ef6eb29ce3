package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gsouza/task-manager-api/internal/auth"
	"github.com/gsouza/task-manager-api/internal/constants"
	apierrors "github.com/gsouza/task-manager-api/internal/errors"
)

// RequireAuth validates the bearer token on every protected route. A
// missing credential is 401; a credential that was supplied but rejected
// (invalid, tampered, expired) is 403. On success the decoded identity is
// attached to the context; the user record is never re-fetched here.
func RequireAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			apierrors.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				apierrors.Forbidden(c, "Token expirado")
			} else {
				apierrors.Forbidden(c, "Token inválido")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
