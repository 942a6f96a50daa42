package payments

import "github.com/gin-gonic/gin"

func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/payments/webhook", controller.Webhook)
}
