package analytics

import (
	"festtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller, auth gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(auth)
	admin.Use(middleware.RequireAdmin())

	admin.GET("/overview", controller.GetOverview)
	admin.GET("/overview/daily", controller.GetDailySales) // ?days=30
}
