//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-parking/internal/pkg/errs"
	"campus-parking/internal/pkg/jwt"
	"campus-parking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct{ password string }

func (s stubChecker) Validate(password string) bool { return password == s.password }

type stubIssuer struct {
	subject, role string
	err           error
}

func (s *stubIssuer) GenerateToken(subject, role string) (string, error) {
	s.subject, s.role = subject, role
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + subject, nil
}

func (s *stubIssuer) TokenDuration() time.Duration { return 8 * time.Hour }

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success: issues an admin token", func(t *testing.T) {
		issuer := &stubIssuer{}
		auth := commands.NewAuthCommands(stubChecker{password: "s3cret"}, issuer)

		result, err := auth.Login(ctx, "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "token-for-admin", result.Token)
		assert.Equal(t, 8*time.Hour, result.ExpiresIn)
		assert.Equal(t, commands.AdminSubject, issuer.subject)
		assert.Equal(t, jwt.RoleAdmin, issuer.role)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		issuer := &stubIssuer{}
		auth := commands.NewAuthCommands(stubChecker{password: "s3cret"}, issuer)

		result, err := auth.Login(ctx, "guess")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Empty(t, issuer.subject)
	})

	t.Run("error: signing failure", func(t *testing.T) {
		auth := commands.NewAuthCommands(stubChecker{password: "s3cret"}, &stubIssuer{err: errors.New("bad key")})

		_, err := auth.Login(ctx, "s3cret")

		assert.True(t, errs.Is(err, errs.ErrTokenGeneration))
		assert.False(t, errs.Is(err, errs.ErrInvalidCredentials))
	})
}
