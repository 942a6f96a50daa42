package orders

import (
	"festtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers storefront and admin order routes.
// auth authenticates the admin group.
func SetupOrderRoutes(router *gin.RouterGroup, controller *Controller, auth gin.HandlerFunc) {
	router.POST("/checkout", controller.Checkout)
	router.GET("/orders/:id", controller.GetOrder)

	adminOrders := router.Group("/admin/orders")
	adminOrders.Use(auth, middleware.RequireAdmin())
	{
		adminOrders.GET("", controller.ListOrders)
		adminOrders.POST("/cleanup", controller.CleanupUnpaid)
		adminOrders.GET("/:id", controller.GetOrder)
		adminOrders.DELETE("/:id", controller.DeleteOrder)
		adminOrders.POST("/:id/resend-email", controller.ResendEmail)
	}
}
