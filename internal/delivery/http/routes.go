package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lawalalx/foodplan/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		mealplan := v1.Group("/mealplan")
		{
			mealplan.POST("/generate", handler.GeneratePlan)
			mealplan.POST("/ingredients", handler.MealIngredients)
			mealplan.POST("/cart", handler.BuildCart)
			mealplan.POST("/feedback", handler.RecordFeedback)
			mealplan.GET("/recommendations/:userID", handler.Recommendations)
			mealplan.GET("/insights/:userID", handler.Insights)
		}

		v1.PUT("/catalog", handler.ReplaceCatalog)
	}

	return router
}
