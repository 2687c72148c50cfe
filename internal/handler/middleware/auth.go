package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campus-parking/internal/handler/httperr"
	"campus-parking/internal/pkg/cookie"
	"campus-parking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errors.New("admin token required")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminSubjectKey = "admin_subject"
	ctxAdminRoleKey    = "admin_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the admin session cookie or a Bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Admin token required", nil)
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminSubjectKey, subject)
		c.Set(ctxAdminRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": subject,
			"role":    role,
		})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAdminToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
