package commands

import (
	"context"
	"log/slog"
	"time"

	"campus-parking/internal/pkg/errs"
	"campus-parking/internal/pkg/jwt"
)

// AdminSubject is the token subject of the shared admin session.
const AdminSubject = "admin"

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	credentials CredentialChecker
	tokens      TokenIssuer
}

func NewAuthCommands(credentials CredentialChecker, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		credentials: credentials,
		tokens:      tokens,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, password string) (*LoginResult, error) {
	if !a.credentials.Validate(password) {
		slog.Warn("admin login rejected")
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(AdminSubject, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
	}, nil
}
