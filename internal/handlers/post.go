package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

const defaultRecentPostLimit = 20

// PostHandler handles post HTTP requests.
type PostHandler struct {
	postService service.PostService
	respond     Responder
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(postService service.PostService, respond Responder) *PostHandler {
	return &PostHandler{postService: postService, respond: respond}
}

// CreatePostRequest represents the post creation payload.
type CreatePostRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post content"
// @Success 201 {object} service.PostResponse
// @Failure 400 {object} ErrorBody
// @Failure 401 {object} ErrorBody
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond.BindError(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), principal.SubjectID, req.Caption, req.ImageURL)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusCreated, post)
}

// Get godoc
// @Summary Get a single post
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} service.PostResponse
// @Failure 404 {object} ErrorBody
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, post)
}

// ListRecent godoc
// @Summary List recent posts
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max posts to return"
// @Success 200 {array} service.PostResponse
// @Router /posts [get]
func (h *PostHandler) ListRecent(c *gin.Context) {
	limit := queryInt(c, "limit", defaultRecentPostLimit)

	posts, err := h.postService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, posts)
}

// ListByUser godoc
// @Summary List a user's posts
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} service.PostResponse
// @Failure 404 {object} ErrorBody
// @Router /users/{id}/posts [get]
func (h *PostHandler) ListByUser(c *gin.Context) {
	id, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	posts, err := h.postService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, posts)
}

// Delete godoc
// @Summary Delete own post
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorBody
// @Failure 403 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	id, ok := h.respond.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), principal, id); err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, gin.H{"message": "post deleted"})
}
