//go:build unit

package user_test

import (
	"testing"

	"tripcart/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "traveler@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  traveler@example.com  "},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "traveler.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "traveler@", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "traveler@example.com", email.Value())
		})
	}
}

func TestNewRegistration(t *testing.T) {
	t.Run("valid registration trims names", func(t *testing.T) {
		reg, err := user.NewRegistration("traveler@example.com", "password123", "password123", " Ana ", " Silva ")
		require.NoError(t, err)
		assert.Equal(t, "Ana", reg.FirstName())
		assert.Equal(t, "Silva", reg.LastName())
		assert.Equal(t, "traveler@example.com", reg.Credentials().Email().Value())
	})

	t.Run("password confirmation must match", func(t *testing.T) {
		_, err := user.NewRegistration("traveler@example.com", "password123", "different123", "Ana", "Silva")
		assert.ErrorIs(t, err, user.ErrPasswordMismatch)
	})

	t.Run("short passwords are rejected", func(t *testing.T) {
		_, err := user.NewRegistration("traveler@example.com", "short", "short", "Ana", "Silva")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"customer", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.True(t, role.IsValid())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
