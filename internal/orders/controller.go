package orders

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"festtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxPageSize = 100

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

// Checkout handles POST /checkout
func (c *Controller) Checkout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.Checkout(ctx.Request.Context(), &req)
	if err != nil {
		var selErr *SelectionError
		switch {
		case errors.As(err, &selErr):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, selErr.Message, nil, gin.H{
				"line":         selErr.Line,
				"product_code": selErr.ProductCode,
			})
		case errors.Is(err, ErrInvalidCheckout):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid checkout request", nil, err.Error())
		case errors.Is(err, ErrPaymentUnavailable):
			response.RespondJSON(ctx, "error", http.StatusBadGateway, "Payment provider unavailable, please try again", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create order", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Order created, continue to payment", resp, nil)
}

// GetOrder handles GET /orders/:id and GET /admin/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	id, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	order, err := c.service.GetOrder(ctx.Request.Context(), id)
	if err != nil {
		c.respondOrderError(ctx, err, "Failed to retrieve order")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Order retrieved successfully", order, nil)
}

// ListOrders handles GET /admin/orders
func (c *Controller) ListOrders(ctx *gin.Context) {
	var query OrderListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}
	if query.Limit > maxPageSize {
		query.Limit = maxPageSize
	}

	list, total, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		if errors.Is(err, ErrInvalidCheckout) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid status filter", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list orders", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Orders retrieved successfully", response.NewPaginated(list, query.Page, query.Limit, total), nil)
}

// DeleteOrder handles DELETE /admin/orders/:id
func (c *Controller) DeleteOrder(ctx *gin.Context) {
	id, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		c.respondOrderError(ctx, err, "Failed to delete order")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Order deleted successfully", nil, nil)
}

// CleanupUnpaid handles POST /admin/orders/cleanup
func (c *Controller) CleanupUnpaid(ctx *gin.Context) {
	var req CleanupRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
			return
		}
		if err := c.validator.Struct(&req); err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
			return
		}
	}

	result, err := c.service.CleanupUnpaid(ctx.Request.Context(), time.Duration(req.OlderThanMinutes)*time.Minute)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to clean up unpaid orders", nil, nil)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Unpaid orders cleaned up", result, nil)
}

// ResendEmail handles POST /admin/orders/:id/resend-email
func (c *Controller) ResendEmail(ctx *gin.Context) {
	id, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	if err := c.service.ResendEmail(ctx.Request.Context(), id); err != nil {
		c.respondOrderError(ctx, err, "Failed to resend ticket email")
		return
	}
	response.RespondJSON(ctx, "success", http.StatusAccepted, "Ticket email queued", nil, nil)
}

func (c *Controller) respondOrderError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Order not found", nil, nil)
	case errors.Is(err, ErrOrderNotDeletable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Paid orders cannot be deleted", nil, nil)
	case errors.Is(err, ErrOrderNotPaid):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Order is not paid", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}

func parseOrderID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(ctx.Param("id")))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid order ID", nil, nil)
		return uuid.Nil, false
	}
	return id, true
}
