//go:build unit

package password_test

import (
	"testing"

	"campus-parking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashChecker(t *testing.T) {
	hash, err := password.HashPassword("campus123")
	require.NoError(t, err)

	checker, err := password.NewHashChecker(hash)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "matching password", password: "campus123", want: true},
		{name: "wrong password", password: "campus124", want: false},
		{name: "empty password", password: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, checker.Validate(tc.password))
		})
	}
}

func TestNewHashChecker_RejectsPlaintext(t *testing.T) {
	_, err := password.NewHashChecker("campus123")
	assert.ErrorIs(t, err, password.ErrInvalidHash)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
