package services_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesTokenAndHashesPassword(t *testing.T) {
	svc := services.NewAuthService(repositories.NewMemoryUserStore())

	user, token, err := svc.Register(context.Background(), "Priya", "priya@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := services.NewAuthService(repositories.NewMemoryUserStore())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Priya", "priya@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Someone Else", "priya@example.com", "different")
	require.Error(t, err)

	var domainErr *services.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 400, domainErr.Status)
	assert.Equal(t, "User already exists with this email", domainErr.Message)
}

func TestLogin(t *testing.T) {
	svc := services.NewAuthService(repositories.NewMemoryUserStore())
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Priya", "priya@example.com", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "priya@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "priya@example.com", "wrong")
		var domainErr *services.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, 401, domainErr.Status)
		assert.Equal(t, "Invalid credentials", domainErr.Message)
	})

	t.Run("unknown email uses the same message", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		var domainErr *services.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, 401, domainErr.Status)
		assert.Equal(t, "Invalid credentials", domainErr.Message)
	})
}
