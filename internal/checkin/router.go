package checkin

import (
	"festtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCheckinRoutes(router *gin.RouterGroup, controller *Controller, auth gin.HandlerFunc) {
	scanner := router.Group("/scanner")
	scanner.Use(auth, middleware.RequireStaff())
	{
		scanner.POST("/scan", controller.Scan)
		scanner.GET("/tickets/:code", controller.Inspect)
	}
}
