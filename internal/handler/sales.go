package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/business-insights/internal/repository"
)

// SalesHandler serves the sales endpoint. Sales are create-only; there
// is no list route, the history surfaces through the insight metrics.
type SalesHandler struct {
	Sales *repository.SalesRepo
}

func NewSalesHandler(sales *repository.SalesRepo) *SalesHandler {
	return &SalesHandler{Sales: sales}
}

type createSaleReq struct {
	BusinessID   uint64           `json:"business_id"`
	InventoryID  uint64           `json:"inventory_id"`
	QuantitySold *int             `json:"quantity_sold"`
	TotalPrice   *decimal.Decimal `json:"total_price"`
	SoldAt       *time.Time       `json:"sold_at"` // defaults to now
}

// Create records a sale. The quantity is not subtracted from inventory;
// stock adjustments are the owner's responsibility.
func (h *SalesHandler) Create(c echo.Context) error {
	var req createSaleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BusinessID == 0 || req.InventoryID == 0 || req.QuantitySold == nil || req.TotalPrice == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "business_id, inventory_id, quantity_sold and total_price are required"})
	}
	soldAt := time.Now().UTC()
	if req.SoldAt != nil {
		soldAt = req.SoldAt.UTC()
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	s, err := h.Sales.Create(ctx, req.BusinessID, req.InventoryID, *req.QuantitySold, *req.TotalPrice, soldAt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create sale failed"})
	}
	return c.JSON(http.StatusCreated, s)
}
