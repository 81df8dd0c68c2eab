package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inkwell/config"
	"inkwell/handlers"
	"inkwell/helper"
	"inkwell/logging"
	"inkwell/mailer"
	"inkwell/render"
	"inkwell/repositories"
	"inkwell/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	if err := logging.Init(cfg.Env); err != nil {
		log.Fatal(err)
	}
	logger := logging.L()
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("create upload directory", zap.Error(err))
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	renderer := render.NewRenderer()
	tokenService := services.NewTokenService(cfg.SecretKey)
	authService := services.NewAuthService(userRepo, cfg.SecretKey)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, renderer)
	imageService := services.NewImageService(cfg.UploadDir)

	dispatcher := mailer.NewDispatcher(mailer.Config{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		From:      cfg.Mail.Username,
		SiteAdmin: cfg.Mail.SiteAdmin,
		BaseURL:   cfg.BaseURL,
	}, tokenService)
	defer dispatcher.Close()

	commentService := services.NewCommentService(commentRepo, userService, dispatcher)

	// Handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, userService, httpHelper)
	blogHandler := handlers.NewBlogHandler(postService, commentService, tokenService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, tokenService, cfg.BaseURL, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, tokenService, httpHelper)
	imageHandler := handlers.NewImageHandler(imageService, httpHelper)

	router := handlers.SetupRouter(cfg.SecretKey, httpHelper, authHandler, blogHandler, postHandler, commentHandler, imageHandler)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
