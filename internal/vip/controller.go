package vip

import (
	"errors"
	"net/http"

	"festtix/internal/shared/utils/response"
	"festtix/internal/tickets"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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

// GetAvailability handles GET /vip/availability?day=SAT
func (c *Controller) GetAvailability(ctx *gin.Context) {
	raw := ctx.Query("day")
	if raw == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Query parameter 'day' is required", nil, nil)
		return
	}
	day, ok := tickets.ParseDayCode(raw)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid festival day", nil, nil)
		return
	}

	result, err := c.service.GetAvailability(ctx.Request.Context(), day)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Festival day not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to compute VIP availability", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "VIP availability retrieved successfully", result, nil)
}

// ReserveTable handles POST /vip/reservations
func (c *Controller) ReserveTable(ctx *gin.Context) {
	var req ReserveTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	reservation, err := c.service.ReserveTable(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSelection):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation request", nil, err.Error())
		case errors.Is(err, ErrDayNotFound):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Unknown festival day", nil, err.Error())
		case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrTableNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, err.Error(), nil, nil)
		case errors.Is(err, ErrOrderNotEditable):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Order can no longer be changed", nil, nil)
		case errors.Is(err, ErrSeatsExceedTickets):
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Not enough VIP tickets on the order for these seats", nil, err.Error())
		case errors.Is(err, ErrTableUnavailable):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Table does not have enough free seats", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to reserve table", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Table reserved successfully", reservation, nil)
}

// CancelReservation handles DELETE /vip/reservations/:id
func (c *Controller) CancelReservation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	if err := c.service.CancelReservation(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Reservation not found", nil, nil)
		case errors.Is(err, ErrReservationLocked):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Reservation can no longer be cancelled", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to cancel reservation", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation cancelled successfully", nil, nil)
}
