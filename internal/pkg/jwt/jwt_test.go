//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps subject and role", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken("admin-portal", RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin-portal", claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issued := time.Now().Add(-time.Hour)
		svc.now = func() time.Time { return issued }

		token, err := svc.GenerateToken("admin-portal", RoleAdmin)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token signed with another key is invalid", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken("x", RoleAdmin)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
