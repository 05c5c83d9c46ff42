package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

// LikeHandler handles like HTTP requests.
type LikeHandler struct {
	likeService service.LikeService
	respond     Responder
}

// NewLikeHandler creates a new LikeHandler instance.
func NewLikeHandler(likeService service.LikeService, respond Responder) *LikeHandler {
	return &LikeHandler{likeService: likeService, respond: respond}
}

// Like godoc
// @Summary Like a post
// @Description Liking an already liked post answers 409
// @Tags likes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} ErrorBody
// @Failure 409 {object} ErrorBody
// @Router /posts/{id}/likes [post]
func (h *LikeHandler) Like(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	postID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.likeService.Like(c.Request.Context(), principal.SubjectID, postID); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, gin.H{"message": "post liked"})
}

// Unlike godoc
// @Summary Unlike a post
// @Description Unliking a post that was never liked answers 404
// @Tags likes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorBody
// @Router /posts/{id}/likes [delete]
func (h *LikeHandler) Unlike(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	postID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.likeService.Unlike(c.Request.Context(), principal.SubjectID, postID); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, gin.H{"message": "post unliked"})
}

// ListByPost godoc
// @Summary List a post's likes
// @Tags likes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} service.LikeListing
// @Failure 404 {object} ErrorBody
// @Router /posts/{id}/likes [get]
func (h *LikeHandler) ListByPost(c *gin.Context) {
	postID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	listing, err := h.likeService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, listing)
}
