package checkin

import (
	"net/http"

	"festtix/internal/shared/middleware"
	"festtix/internal/shared/utils/response"
	"festtix/internal/tickets"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Scan handles POST /scanner/scan. Every decision, admitted or not, is a 200.
func (c *Controller) Scan(ctx *gin.Context) {
	var req ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	day, ok := tickets.ParseDayCode(req.Day)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid festival day", nil, nil)
		return
	}

	result, err := c.service.Scan(ctx.Request.Context(), req.Code, day, middleware.UserID(ctx))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to scan ticket", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, result.Message, result, nil)
}

// Inspect handles GET /scanner/tickets/:code?day=FRI
func (c *Controller) Inspect(ctx *gin.Context) {
	day, ok := tickets.ParseDayCode(ctx.Query("day"))
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid festival day", nil, nil)
		return
	}

	result, err := c.service.Inspect(ctx.Request.Context(), ctx.Param("code"), day)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to look up ticket", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, result.Message, result, nil)
}
