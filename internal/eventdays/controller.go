package eventdays

import (
	"net/http"

	"festtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetDays handles GET /days
func (c *Controller) GetDays(ctx *gin.Context) {
	days, err := c.service.List(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve festival days", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Festival days retrieved successfully", days, nil)
}
