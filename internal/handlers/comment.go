package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	commentService service.CommentService
	respond        Responder
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(commentService service.CommentService, respond Responder) *CommentHandler {
	return &CommentHandler{commentService: commentService, respond: respond}
}

// CreateCommentRequest represents the comment creation payload.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create godoc
// @Summary Comment on a post
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body CreateCommentRequest true "Comment content"
// @Success 201 {object} service.CommentResponse
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	postID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), principal.SubjectID, postID, req.Content)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, comment)
}

// ListByPost godoc
// @Summary List a post's comments
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} service.CommentResponse
// @Failure 404 {object} ErrorBody
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, comments)
}

// Delete godoc
// @Summary Delete a comment
// @Description Allowed for the comment's author and for the owner of the post it sits under
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorBody
// @Failure 403 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	id, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), principal, id); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, gin.H{"message": "comment deleted"})
}
