// Package main is the entry point for the social backend API.
package main

import (
	"fmt"

	_ "github.com/Norbu-d/SS2025-WEB-Final-project/docs"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/config"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/database"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/handlers"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/middleware"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/repository"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/routes"
	"github.com/Norbu-d/SS2025-WEB-Final-project/internal/service"
	"github.com/Norbu-d/SS2025-WEB-Final-project/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// @title Social Backend API
// @version 1.0
// @description Accounts, posts, comments, likes, follows and feeds
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg := config.Load()

	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if tokens == nil {
		logrus.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	likeCounter := service.NewLikeCounter(likeRepo, redisClient)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, commentRepo, likeRepo, userRepo, likeCounter)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, postRepo, likeCounter)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, followRepo, commentRepo, likeCounter, redisClient)

	respond := handlers.Responder{Development: cfg.IsDevelopment()}
	cookies := handlers.NewCookieHelper(cfg.Cookie)

	h := routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService, tokens, cookies, respond),
		User:    handlers.NewUserHandler(userService, respond),
		Post:    handlers.NewPostHandler(postService, respond),
		Comment: handlers.NewCommentHandler(commentService, respond),
		Like:    handlers.NewLikeHandler(likeService, respond),
		Follow:  handlers.NewFollowHandler(followService, respond),
		Feed:    handlers.NewFeedHandler(feedService, respond),
		Health:  handlers.NewHealthHandler(db, redisClient),
	}

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, h, tokens, cfg, metrics)

	logrus.WithField("port", cfg.Port).Info("starting api server")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
