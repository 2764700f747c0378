package auth

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/config"
	"github.com/bookhaven/bookhaven/internal/database"
)

func setupTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	dbPath := "./test_auth_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	svc := NewService(db.DB, config.Auth{
		Mode:       config.AuthModeLocal,
		BcryptCost: 4, // keep tests fast
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return svc, cleanup
}

func TestService_Register(t *testing.T) {
	t.Run("creates an account", func(t *testing.T) {
		svc, cleanup := setupTestService(t)
		defer cleanup()

		user, err := svc.Register("Ayesha Khan", "ayesha@example.com", "reading-is-fun")
		require.NoError(t, err)

		assert.NotZero(t, user.ID)
		assert.Equal(t, "Ayesha Khan", user.Name)
		assert.Equal(t, "ayesha@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "reading-is-fun", user.PasswordHash)
	})

	t.Run("normalizes email case", func(t *testing.T) {
		svc, cleanup := setupTestService(t)
		defer cleanup()

		user, err := svc.Register("Ayesha", "AYESHA@Example.COM", "reading-is-fun")
		require.NoError(t, err)
		assert.Equal(t, "ayesha@example.com", user.Email)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, cleanup := setupTestService(t)
		defer cleanup()

		_, err := svc.Register("Ayesha", "ayesha@example.com", "reading-is-fun")
		require.NoError(t, err)

		_, err = svc.Register("Other", "ayesha@example.com", "another-pass")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("validation", func(t *testing.T) {
		svc, cleanup := setupTestService(t)
		defer cleanup()

		tests := []struct {
			name, userName, email, password string
			want                            error
		}{
			{"missing name", "", "a@example.com", "long-enough-pw", ErrNameRequired},
			{"missing email", "A", "", "long-enough-pw", ErrEmailRequired},
			{"missing password", "A", "a@example.com", "", ErrPasswordRequired},
			{"bad email", "A", "not-an-email", "long-enough-pw", ErrEmailInvalid},
			{"short password", "A", "a@example.com", "short", ErrPasswordTooShort},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(tt.userName, tt.email, tt.password)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestService_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		svc, cleanup := setupTestService(t)
		defer cleanup()

		_, err := svc.Register("Ayesha", "ayesha@example.com", "reading-is-fun")
		require.NoError(t, err)

		user, err := svc.Login("ayesha@example.com", "reading-is-fun")
		require.NoError(t, err)
		assert.Equal(t, "Ayesha", user.Name)
	})

	t.Run("wrong password and unknown account look identical", func(t *testing.T) {
		svc, cleanup := setupTestService(t)
		defer cleanup()

		_, err := svc.Register("Ayesha", "ayesha@example.com", "reading-is-fun")
		require.NoError(t, err)

		_, wrongPass := svc.Login("ayesha@example.com", "wrong-password")
		_, noAccount := svc.Login("nobody@example.com", "reading-is-fun")

		assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		assert.ErrorIs(t, noAccount, ErrInvalidCredentials)
	})
}
