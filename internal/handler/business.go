package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-insights/internal/repository"
)

// BusinessHandler serves the business endpoints.
type BusinessHandler struct {
	Businesses *repository.BusinessRepo
}

func NewBusinessHandler(businesses *repository.BusinessRepo) *BusinessHandler {
	return &BusinessHandler{Businesses: businesses}
}

type createBusinessReq struct {
	Name     string  `json:"name"`
	UserID   uint64  `json:"user_id"`
	Category *string `json:"category"`
}

// ListByUser returns all businesses owned by the user in the path.
// An unknown user simply yields an empty array.
func (h *BusinessHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	out, err := h.Businesses.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// Create registers a business for its owner.
func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and user_id are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	b, err := h.Businesses.Create(ctx, req.UserID, req.Name, req.Category)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create business failed"})
	}
	return c.JSON(http.StatusCreated, b)
}

// pathID parses a numeric path parameter into a uint64.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
