package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/stylevault/app/middleware"
	"github.com/shashiranjanraj/stylevault/app/models"
	"github.com/shashiranjanraj/stylevault/app/services"
	"github.com/shashiranjanraj/stylevault/pkg/auth"
	"github.com/shashiranjanraj/stylevault/pkg/bind"
	"github.com/shashiranjanraj/stylevault/pkg/response"
	"github.com/shashiranjanraj/stylevault/pkg/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthController struct {
	service *services.AuthService

	// Resolved once at startup: whether cookies are issued with
	// Secure + SameSite=None (cross-site TLS deployments) or lax for
	// local development.
	secureCookies bool
}

func NewAuthController(service *services.AuthService, secureCookies bool) *AuthController {
	return &AuthController{service: service, secureCookies: secureCookies}
}

// userResponse is the public shape of a user: never the password hash.
type userResponse struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
}

func publicUser(user *models.User) userResponse {
	return userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
}

type registerInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.Error(w, http.StatusBadRequest, validate.First(errs))
		return
	}

	user, token, err := c.service.Register(r.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, auth.SessionCookie(token, c.secureCookies))
	response.Created(w, publicUser(user))
}

type loginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.Error(w, http.StatusBadRequest, validate.First(errs))
		return
	}

	user, token, err := c.service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, auth.SessionCookie(token, c.secureCookies))
	response.OK(w, publicUser(user))
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ExpiredSessionCookie(c.secureCookies))
	response.Message(w, "Logged out successfully")
}

// Profile returns the authenticated user (gated route).
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	response.OK(w, middleware.UserFrom(r.Context()))
}
