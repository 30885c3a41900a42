package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/mapview-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/httputil"
)

const (
	ViewIDKey    = "view_id"
	BearerPrefix = "Bearer "
)

type TokenValidator interface {
	ValidateViewToken(token string) (uuid.UUID, error)
}

type AuthMiddleware struct {
	tokens TokenValidator
}

func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireViewToken rejects requests without a valid view token and stores the
// token's view id under ViewIDKey.
func (m *AuthMiddleware) RequireViewToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.HandleError(c, apperror.Unauthorized("authorization header required"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.HandleError(c, apperror.Unauthorized("invalid authorization format"))
			c.Abort()
			return
		}

		viewID, err := m.tokens.ValidateViewToken(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			httputil.HandleError(c, apperror.Unauthorized("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ViewIDKey, viewID)
		c.Next()
	}
}
