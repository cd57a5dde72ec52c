package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("Alice", "Alice@Example.com", "supersecret")
		require.NoError(t, err)

		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email, "email should be lowercased")
		assert.Equal(t, UserRoleUser, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "supersecret", user.PasswordHash)
		assert.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("  ", "alice@example.com", "supersecret")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("Alice", "not-an-email", "supersecret")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("Alice", "alice@example.com", "short")
		assert.Error(t, err)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "supersecret")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("supersecret"))
	assert.False(t, user.VerifyPassword("wrongpassword"))
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "supersecret")
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("evenmoresecret"))
	assert.True(t, user.VerifyPassword("evenmoresecret"))
	assert.False(t, user.VerifyPassword("supersecret"))

	assert.Error(t, user.ChangePassword("short"))
}
