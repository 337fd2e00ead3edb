package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/anyrite/pixelblog-be/internal/api"
	"github.com/anyrite/pixelblog-be/internal/auth"
	"github.com/anyrite/pixelblog-be/internal/config"
	"github.com/anyrite/pixelblog-be/internal/database"
	"github.com/anyrite/pixelblog-be/internal/logger"
	"github.com/anyrite/pixelblog-be/internal/services"
	"github.com/anyrite/pixelblog-be/internal/store/mongostore"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up MongoDB
	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.DBName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// Set up stores
	userStore := mongostore.NewUserStore(db)
	articleStore := mongostore.NewArticleStore(db)
	commentStore := mongostore.NewCommentStore(db)
	likeStore := mongostore.NewLikeStore(db)

	// Set up services
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), auth.DefaultTokenTTL)
	userService := services.NewUserService(userStore, articleStore, hasher)
	articleService := services.NewArticleService(articleStore, commentStore, likeStore)
	commentService := services.NewCommentService(commentStore, articleStore)
	likeService := services.NewLikeService(likeStore, articleStore)

	// Set up router
	router := api.NewRouter(cfg.CORSOrigins, tokens, userStore, userService, articleService, commentService, likeService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
