// Package handlers contains HTTP request handlers for the social backend.
package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/models"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and session HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	tokens      service.TokenService
	cookies     *CookieHelper
	respond     Responder
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, tokens service.TokenService, cookies *CookieHelper, respond Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		cookies:     cookies,
		respond:     respond,
	}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=30"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"full_name" binding:"required"`
	BirthMonth *int   `json:"birth_month"`
	BirthDay   *int   `json:"birth_day"`
	BirthYear  *int   `json:"birth_year"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user and their token. The token
// is also written as an httpOnly cookie; the body copy serves non-browser
// clients.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorBody
// @Failure 409 {object} ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		BirthMonth: req.BirthMonth,
		BirthDay:   req.BirthDay,
		BirthYear:  req.BirthYear,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.cookies.SetToken(c, token, h.tokens.Expiry())
	h.respond.OK(c, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.cookies.SetToken(c, token, h.tokens.Expiry())
	h.respond.OK(c, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Logout godoc
// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.ClearToken(c)
	h.respond.OK(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), principal.SubjectID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, user)
}
