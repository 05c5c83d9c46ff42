package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler handles profile HTTP requests.
type UserHandler struct {
	userService service.UserService
	respond     Responder
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService, respond Responder) *UserHandler {
	return &UserHandler{userService: userService, respond: respond}
}

// UpdateProfileRequest represents the profile update payload.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Bio      string `json:"bio"`
	Website  string `json:"website"`
}

// UpdatePictureRequest represents the profile picture update payload.
type UpdatePictureRequest struct {
	ProfilePicture string `json:"profile_picture" binding:"required"`
}

// ChangePasswordRequest represents the password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Get godoc
// @Summary Get a user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorBody
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, user)
}

// Update godoc
// @Summary Update own profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Router /profile [put]
func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), principal.SubjectID, service.ProfileUpdate{
		FullName: req.FullName,
		Bio:      req.Bio,
		Website:  req.Website,
	})
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, user)
}

// UpdatePicture godoc
// @Summary Update own profile picture
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdatePictureRequest true "Picture URL"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Router /profile/picture [put]
func (h *UserHandler) UpdatePicture(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	var req UpdatePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfilePicture(c.Request.Context(), principal.SubjectID, req.ProfilePicture)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change own password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), principal.SubjectID, req.CurrentPassword, req.NewPassword); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, gin.H{"message": "password updated"})
}
