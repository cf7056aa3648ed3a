package api

import (
	"net/http"
	"time"

	"github.com/civiclens/protest-backend-go/internal/handler"
	"github.com/civiclens/protest-backend-go/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP surface around the dashboard and export
// handlers.
func SetupRouter(dashboard *handler.DashboardHandler, export *handler.ExportHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS for the browser-side presentation layer
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Protest Dashboard API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		dash := api.Group("/dashboard")
		{
			dash.GET("/events", dashboard.GetEvents)
			dash.GET("/map", dashboard.GetMap)
			dash.GET("/timeseries", dashboard.GetTimeSeries)
			dash.GET("/kpis", dashboard.GetKPIs)
			dash.GET("/locations/:label", dashboard.GetLocationEvents)
			dash.GET("/meta", dashboard.GetMeta)
			dash.GET("/export", middleware.RateLimit(10, time.Minute), export.Download)
		}
	}

	return r
}
