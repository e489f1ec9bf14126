// Package middleware holds application-level middleware: the session gate
// that protects cart, order, and profile routes.
package middleware

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/repositories"
	"github.com/shashiranjanraj/stylevault/pkg/auth"
	"github.com/shashiranjanraj/stylevault/pkg/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFrom returns the authenticated user attached by Authenticate, or nil
// on ungated routes.
func UserFrom(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey{}).(*models.User); ok {
		return user
	}
	return nil
}

// Authenticate verifies the session cookie and resolves its subject to a
// live user, which downstream handlers read with UserFrom. Absent,
// malformed, and expired credentials are all 401s; so is a token whose user
// no longer exists.
func Authenticate(users repositories.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				response.Error(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := auth.ValidateToken(cookie.Value)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			id, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			user, err := users.FindByID(r.Context(), id)
			if err != nil {
				response.Error(w, http.StatusInternalServerError, "Server error")
				return
			}
			if user == nil {
				response.Error(w, http.StatusUnauthorized, "User not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
