package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/palemoky/chinese-pinyin-api/internal/api/middleware"
	"github.com/palemoky/chinese-pinyin-api/internal/api/rest/handler"
	"github.com/palemoky/chinese-pinyin-api/internal/config"
	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
	"github.com/palemoky/chinese-pinyin-api/internal/search"
)

// SetupRouter sets up the Gin router with all routes
func SetupRouter(cfg *config.Config, db *database.DB, repo *database.Repository, reg *dict.Registry) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())

	// Rate limiting middleware
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(rateLimiter.Middleware())
	}

	searchEngine := search.NewEngine(db)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", handler.HealthHandler(db))

		// Statistics
		v1.GET("/stats", handler.StatsHandler(repo, reg))

		// Conversion routes
		convertHandler := handler.NewConvertHandler(reg)
		v1.GET("/convert", convertHandler.Convert)
		v1.POST("/convert", convertHandler.ConvertBody)
		v1.POST("/convert/batch", convertHandler.ConvertBatch)
		v1.GET("/heteronyms/:char", convertHandler.Heteronyms)

		// Dictionary routes
		dictHandler := handler.NewDictHandler(repo, searchEngine, cfg.Search)
		v1.GET("/dict/chars", dictHandler.ListChars)
		v1.GET("/dict/chars/:char", dictHandler.GetChar)
		v1.GET("/dict/phrases", dictHandler.ListPhrases)
		v1.GET("/dict/surnames", dictHandler.ListSurnames)
		v1.GET("/dict/random", dictHandler.RandomChar)
		v1.GET("/dict/search", dictHandler.Search)

		// Custom reading routes
		customHandler := handler.NewCustomHandler(reg)
		v1.POST("/dict/custom", customHandler.AddCustom)
		v1.DELETE("/dict/custom", customHandler.ClearCustom)
	}

	return router
}
