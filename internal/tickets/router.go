package tickets

import "github.com/gin-gonic/gin"

func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/catalog", controller.GetCatalog)
	rg.POST("/tickets/validate", controller.ValidateSelection)
}
