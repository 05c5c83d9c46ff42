package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

// FollowHandler handles follow HTTP requests.
type FollowHandler struct {
	followService service.FollowService
	respond       Responder
}

// NewFollowHandler creates a new FollowHandler instance.
func NewFollowHandler(followService service.FollowService, respond Responder) *FollowHandler {
	return &FollowHandler{followService: followService, respond: respond}
}

// Follow godoc
// @Summary Follow a user
// @Description Following yourself answers 400, following twice answers 409
// @Tags follows
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 409 {object} ErrorBody
// @Router /users/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	targetID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Follow(c.Request.Context(), principal.SubjectID, targetID); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, gin.H{"message": "user followed"})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Description Unfollowing a user you never followed answers 404
// @Tags follows
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorBody
// @Router /users/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	targetID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), principal.SubjectID, targetID); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, gin.H{"message": "user unfollowed"})
}

// Followers godoc
// @Summary List a user's followers
// @Tags follows
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserSummary
// @Failure 404 {object} ErrorBody
// @Router /users/{id}/followers [get]
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	users, err := h.followService.Followers(c.Request.Context(), userID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, users)
}

// Following godoc
// @Summary List who a user follows
// @Tags follows
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.UserSummary
// @Failure 404 {object} ErrorBody
// @Router /users/{id}/following [get]
func (h *FollowHandler) Following(c *gin.Context) {
	userID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	users, err := h.followService.Following(c.Request.Context(), userID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, users)
}
