package tickets

import (
	"net/http"

	"festtix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	validator *validator.Validate
}

func NewController() *Controller {
	return &Controller{validator: validator.New()}
}

// GetCatalog handles GET /catalog
func (c *Controller) GetCatalog(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Catalog retrieved successfully", Catalog(), nil)
}

// ValidateSelection handles POST /tickets/validate
func (c *Controller) ValidateSelection(ctx *gin.Context) {
	var req ValidateSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	product, _ := ParseProductCode(req.ProductCode)
	res := ValidateSelection(product, req.Days)

	resp := ValidateSelectionResponse{Result: res, ProductCode: product}
	if product.IsValid() {
		resp.Label = product.Label()
		resp.Category = product.Category()
		resp.DurationLabel = product.DurationLabel()
	}
	if res.Valid {
		if unit, err := price(product, res.DaySet()); err == nil {
			resp.UnitPrice = &unit
		}
	}

	// a rejected selection is still a well-formed answer
	response.RespondJSON(ctx, "success", http.StatusOK, "Selection evaluated", resp, nil)
}
