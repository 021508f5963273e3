package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/business-insights/internal/repository"
)

// InventoryHandler serves the inventory endpoints.
type InventoryHandler struct {
	Inventory *repository.InventoryRepo
}

func NewInventoryHandler(inv *repository.InventoryRepo) *InventoryHandler {
	return &InventoryHandler{Inventory: inv}
}

// Numeric required fields are pointers so "missing" and "zero" stay
// distinguishable after JSON binding.
type createInventoryReq struct {
	ItemName     string           `json:"item_name"`
	Description  *string          `json:"description"`
	Quantity     *int             `json:"quantity"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
	BusinessID   uint64           `json:"business_id"`
}

// ListByBusiness returns all inventory items of the business in the path.
func (h *InventoryHandler) ListByBusiness(c echo.Context) error {
	businessID, err := pathID(c, "business_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid business_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	out, err := h.Inventory.ListByBusiness(ctx, businessID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds an inventory item to a business.
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createInventoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" || req.Quantity == nil || req.PricePerUnit == nil || req.BusinessID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "item_name, quantity, price_per_unit and business_id are required"})
	}
	if *req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	item, err := h.Inventory.Create(ctx, req.BusinessID, req.ItemName, req.Description, *req.Quantity, *req.PricePerUnit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create inventory item failed"})
	}
	return c.JSON(http.StatusCreated, item)
}
