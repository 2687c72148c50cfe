package commands

import "time"

// CredentialChecker verifies the shared admin password.
type CredentialChecker interface {
	Validate(password string) bool
}

type TokenIssuer interface {
	GenerateToken(subject, role string) (string, error)
	TokenDuration() time.Duration
}

// IntN returns a uniform value in [0, n).
type IntN func(n int) int
