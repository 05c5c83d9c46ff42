package handlers

import (
	"net/http"

	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
)

// FeedHandler handles feed HTTP requests.
type FeedHandler struct {
	feedService service.FeedService
	respond     Responder
}

// NewFeedHandler creates a new FeedHandler instance.
func NewFeedHandler(feedService service.FeedService, respond Responder) *FeedHandler {
	return &FeedHandler{feedService: feedService, respond: respond}
}

// Home godoc
// @Summary Home feed
// @Description Posts from followed users and yourself, newest first
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Posts per page"
// @Success 200 {object} service.FeedPage
// @Failure 401 {object} ErrorBody
// @Router /feed [get]
func (h *FeedHandler) Home(c *gin.Context) {
	principal, ok := h.respond.principal(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	feed, err := h.feedService.Home(c.Request.Context(), principal.SubjectID, page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, feed)
}

// Explore godoc
// @Summary Explore feed
// @Description All posts with wraparound pagination: every page carries a full complement of posts as long as any exist
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Posts per page"
// @Success 200 {object} service.FeedPage
// @Failure 401 {object} ErrorBody
// @Router /explore [get]
func (h *FeedHandler) Explore(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	feed, err := h.feedService.Explore(c.Request.Context(), page, limit)
	if err != nil {
		h.respond.Error(c, err)
		return
	}

	h.respond.OK(c, http.StatusOK, feed)
}
