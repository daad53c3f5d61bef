package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kevradan/homestead-be/internal/api"
	"github.com/kevradan/homestead-be/internal/auth"
	"github.com/kevradan/homestead-be/internal/config"
	"github.com/kevradan/homestead-be/internal/database"
	"github.com/kevradan/homestead-be/internal/logger"
	"github.com/kevradan/homestead-be/internal/seed"
	"github.com/kevradan/homestead-be/internal/services"
	"github.com/kevradan/homestead-be/internal/storage"
	"github.com/rs/zerolog/log"
)

func main() {
	runSeed := flag.Bool("seed", false, "load the demo data set and exit")
	flag.Parse()

	logger.Init()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	userStore := storage.NewUserStore(db)
	residencyStore := storage.NewResidencyStore(db)
	userService := services.NewUserService(userStore)
	residencyService := services.NewResidencyService(residencyStore, userService)

	if *runSeed {
		if err := seed.Run(context.Background(), userService, residencyService); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Msg("Demo data loaded")
		return
	}

	// Set up the auth gate against the external identity provider
	verifier := auth.NewVerifier(cfg.AuthAudience, cfg.AuthIssuer, cfg.AuthJWKSURL)

	// Set up router
	router := api.NewRouter(verifier, residencyService, userService, cfg.CORSOrigin)

	// Set up server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
