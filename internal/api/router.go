package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ramdani/geocell-backend-go/internal/config"
	"github.com/ramdani/geocell-backend-go/internal/handler"
	"github.com/ramdani/geocell-backend-go/internal/middleware"
	"github.com/ramdani/geocell-backend-go/internal/repository"
	"github.com/ramdani/geocell-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into the gin engine
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS for the map frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	coverageService := service.NewCoverageService(
		repository.NewSectorRepository(db),
		repository.NewSampleRepository(db),
	)
	siteHandler := handler.NewSiteHandler(coverageService)
	sampleHandler := handler.NewSampleHandler(coverageService)
	coverageHandler := handler.NewCoverageHandler(coverageService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Coverage Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		sites := api.Group("/sites")
		{
			sites.GET("", siteHandler.List)
			sites.POST("/bulk", middleware.Auth(cfg.JWTSecret), siteHandler.BulkLoad)
		}

		samples := api.Group("/samples")
		{
			samples.GET("", sampleHandler.List)
			samples.POST("/bulk", middleware.Auth(cfg.JWTSecret), sampleHandler.BulkLoad)
		}

		coverage := api.Group("/coverage")
		{
			coverage.GET("/footprints", coverageHandler.Footprints)
			coverage.GET("/spider", coverageHandler.Spider)
			coverage.GET("/stats/cells", coverageHandler.CellStats)
			coverage.GET("/stats/rsrp", coverageHandler.RSRPStats)
			coverage.GET("/scene", coverageHandler.Scene)
		}
	}

	return r
}
