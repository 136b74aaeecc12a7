package main

import (
	"net/http"

	"socialapp/auth"
	"socialapp/config"
	"socialapp/database"
	"socialapp/handlers"
	"socialapp/logger"
	"socialapp/repositories"
	"socialapp/routes"
	"socialapp/services"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}

	logger.Init(cfg.LogLevel)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logrus.Fatalf("database error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migration error: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	likeRepo := repositories.NewLikeRepository(db)

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo, followRepo)
	followService := services.NewFollowService(followRepo, userRepo)
	likeService := services.NewLikeService(likeRepo, userRepo, postRepo)

	handler := routes.SetupRoutes(routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService),
		User:   handlers.NewUserHandler(userService),
		Post:   handlers.NewPostHandler(postService),
		Follow: handlers.NewFollowHandler(followService),
		Like:   handlers.NewLikeHandler(likeService),
		System: handlers.NewSystemHandler(db),
	}, tokens, userRepo)

	logrus.WithField("addr", cfg.HTTPAddr).Info("server listening")
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
