package eventdays

import "github.com/gin-gonic/gin"

func SetupEventDayRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/days", controller.GetDays)
}
