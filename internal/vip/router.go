package vip

import "github.com/gin-gonic/gin"

func SetupVIPRoutes(rg *gin.RouterGroup, controller *Controller) {
	vip := rg.Group("/vip")
	{
		vip.GET("/availability", controller.GetAvailability)
		vip.POST("/reservations", controller.ReserveTable)
		vip.DELETE("/reservations/:id", controller.CancelReservation)
	}
}
