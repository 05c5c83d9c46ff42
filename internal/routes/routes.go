// Package routes defines HTTP routes for the social backend.
package routes

import (
	"github.com/Norbu-d/SS2025-WEB-Final-project/docs"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/config"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/handlers"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/middleware"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Post    *handlers.PostHandler
	Comment *handlers.CommentHandler
	Like    *handlers.LikeHandler
	Follow  *handlers.FollowHandler
	Feed    *handlers.FeedHandler
	Health  *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application. Everything under
// /api/v1 except registration and login sits behind authentication.
func Setup(router *gin.Engine, h Handlers, tokens service.TokenService, cfg *config.Config, metrics *middleware.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	if metrics != nil {
		router.Use(metrics.Handler())
	}
	router.Use(middleware.CSRF(cfg.AllowedOrigins))

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	authed := v1.Group("", middleware.RequireAuth(tokens))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)

		authed.GET("/users/:id", h.User.Get)
		// Self-profile mutations live under /profile so the static
		// segment never collides with the :id wildcard.
		authed.PUT("/profile", h.User.Update)
		authed.PUT("/profile/picture", h.User.UpdatePicture)
		authed.PUT("/profile/password", h.User.ChangePassword)
		authed.GET("/users/:id/posts", h.Post.ListByUser)
		authed.POST("/users/:id/follow", h.Follow.Follow)
		authed.DELETE("/users/:id/follow", h.Follow.Unfollow)
		authed.GET("/users/:id/followers", h.Follow.Followers)
		authed.GET("/users/:id/following", h.Follow.Following)

		authed.POST("/posts", h.Post.Create)
		authed.GET("/posts", h.Post.ListRecent)
		authed.GET("/posts/:id", h.Post.Get)
		authed.DELETE("/posts/:id", h.Post.Delete)
		authed.POST("/posts/:id/comments", h.Comment.Create)
		authed.GET("/posts/:id/comments", h.Comment.ListByPost)
		authed.POST("/posts/:id/likes", h.Like.Like)
		authed.DELETE("/posts/:id/likes", h.Like.Unlike)
		authed.GET("/posts/:id/likes", h.Like.ListByPost)

		authed.DELETE("/comments/:id", h.Comment.Delete)

		authed.GET("/feed", h.Feed.Home)
		authed.GET("/explore", h.Feed.Explore)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
