// Package auth issues and verifies the session credential: an HS256 JWT
// carried in the HTTP-only `token` cookie, plus bcrypt password helpers.
package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/stylevault/config"
	"golang.org/x/crypto/bcrypt"
)

// CookieName is the session cookie carrying the signed credential.
const CookieName = "token"

// TokenTTL is the session credential validity window.
const TokenTTL = 30 * 24 * time.Hour

// Claims holds the typed JWT payload. UserID is the user's ObjectID hex.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed 30-day JWT for the given user.
func GenerateToken(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// SessionCookie builds the session cookie for a freshly issued token.
// Cross-site deployments (TLS-terminated frontends on another origin) need
// Secure + SameSite=None; local development uses a lax, non-secure cookie.
func SessionCookie(token string, secure bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(TokenTTL / time.Second),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// ExpiredSessionCookie clears the session cookie (same name and path, already
// expired).
func ExpiredSessionCookie(secure bool) *http.Cookie {
	c := SessionCookie("", secure)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
