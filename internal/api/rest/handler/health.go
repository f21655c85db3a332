package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/chinese-pinyin-api/internal/database"
	"github.com/palemoky/chinese-pinyin-api/internal/dict"
)

// HealthHandler handles health check requests
func HealthHandler(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check database connection
		sqlDB, err := db.DB.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "failed to get database connection",
			})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	}
}

// StatsHandler returns dictionary statistics, covering both the
// database rows and the in-memory registry
func StatsHandler(repo *database.Repository, reg *dict.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := repo.GetStatistics()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to get statistics",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"database": stats,
			"registry": reg.Stats(),
		})
	}
}
