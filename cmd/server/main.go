package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Gomguk-paper/Gomguk-BE/internal/config"
	"github.com/Gomguk-paper/Gomguk-BE/internal/db"
	"github.com/Gomguk-paper/Gomguk-BE/internal/handlers"
	"github.com/Gomguk-paper/Gomguk-BE/internal/logger"
	"github.com/Gomguk-paper/Gomguk-BE/internal/repos"
	"github.com/Gomguk-paper/Gomguk-BE/internal/server"
	"github.com/Gomguk-paper/Gomguk-BE/internal/services"
	"github.com/Gomguk-paper/Gomguk-BE/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	paperRepo := repos.NewPaperRepo(theDB, log)
	prefRepo := repos.NewUserPreferenceRepo(theDB, log)
	actionRepo := repos.NewUserActionRepo(theDB, log)
	summaryRepo := repos.NewSummaryRepo(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	weights := config.DefaultScoringWeights()
	recommendationSvc := services.NewRecommendationService(theDB, log, weights, paperRepo, prefRepo, actionRepo, summaryRepo)
	paperSvc := services.NewPaperService(theDB, log, paperRepo, summaryRepo)
	preferenceSvc := services.NewPreferenceService(theDB, log, prefRepo)

	// Handlers
	log.Info("Setting up Handlers from main...")
	recommendationHandler := handlers.NewRecommendationHandler(log, recommendationSvc)
	paperHandler := handlers.NewPaperHandler(log, paperSvc)
	preferenceHandler := handlers.NewPreferenceHandler(log, preferenceSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		RecommendationHandler: recommendationHandler,
		PaperHandler:          paperHandler,
		PreferenceHandler:     preferenceHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
