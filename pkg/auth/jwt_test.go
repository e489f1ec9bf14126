package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/stylevault/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	token, err := auth.GenerateToken(id)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, auth.TokenTTL.Seconds(), ttl.Seconds(), 60)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSignature(t *testing.T) {
	claims := auth.Claims{
		UserID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = auth.ValidateToken(forged)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := auth.Claims{
		UserID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("change-me-in-production"))
	require.NoError(t, err)

	_, err = auth.ValidateToken(expired)
	assert.Error(t, err)
}

func TestSessionCookie(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		c := auth.SessionCookie("tok", false)
		assert.Equal(t, "token", c.Name)
		assert.Equal(t, "tok", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, int(auth.TokenTTL/time.Second), c.MaxAge)
	})

	t.Run("cross-site TLS", func(t *testing.T) {
		c := auth.SessionCookie("tok", true)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	})

	t.Run("expired clears the session", func(t *testing.T) {
		c := auth.ExpiredSessionCookie(false)
		assert.Equal(t, "token", c.Name)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
		assert.True(t, c.Expires.Before(time.Now()))
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, auth.CheckPassword(hash, "secret123"))
	assert.False(t, auth.CheckPassword(hash, "secret124"))
}
