package analytics

import (
	"net/http"
	"strconv"

	"festtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetOverview(c *gin.Context)
	GetDailySales(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetOverview(c *gin.Context) {
	overview, err := ctrl.service.GetOverview(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load overview", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Overview retrieved successfully", overview, nil)
}

func (ctrl *controller) GetDailySales(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid days parameter", nil, nil)
			return
		}
		days = parsed
	}

	stats, err := ctrl.service.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to load daily sales", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Daily sales retrieved successfully", stats, nil)
}
