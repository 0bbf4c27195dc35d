package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Gomguk-paper/Gomguk-BE/internal/handlers"
)

type RouterConfig struct {
	RecommendationHandler *handlers.RecommendationHandler
	PaperHandler          *handlers.PaperHandler
	PreferenceHandler     *handlers.PreferenceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	router.GET("/", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/recommendations", cfg.RecommendationHandler.GetRecommendations)
		api.GET("/papers/:paper_id", cfg.PaperHandler.GetPaper)
		api.GET("/summaries/:paper_id", cfg.PaperHandler.GetSummary)
		api.POST("/user-preferences", cfg.PreferenceHandler.SavePreferences)
		api.GET("/user-preferences/:user_id", cfg.PreferenceHandler.GetPreferences)
	}

	return router
}
