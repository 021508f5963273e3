package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/business-insights/internal/model"
	"github.com/iliyamo/business-insights/internal/repository"
)

// InsightHandler exposes the metric endpoints. The per-metric routes
// compute and persist a new insight row on every call; the history and
// comprehensive routes only read.
type InsightHandler struct {
	Insights *repository.InsightRepo
}

func NewInsightHandler(insights *repository.InsightRepo) *InsightHandler {
	return &InsightHandler{Insights: insights}
}

// List returns the full insight history for a business, oldest first.
func (h *InsightHandler) List(c echo.Context) error {
	businessID, err := pathID(c, "business_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid business id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := h.Insights.ListByBusiness(ctx, businessID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list insights failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

// Revenue computes total revenue and appends it to the history.
func (h *InsightHandler) Revenue(c echo.Context) error {
	return h.recordMetric(c, h.Insights.RecordTotalRevenue)
}

// Profit computes revenue minus COGS and appends it to the history.
func (h *InsightHandler) Profit(c echo.Context) error {
	return h.recordMetric(c, h.Insights.RecordTotalProfit)
}

// InventoryValue computes the current stock value and appends it to the
// history.
func (h *InsightHandler) InventoryValue(c echo.Context) error {
	return h.recordMetric(c, h.Insights.RecordInventoryValue)
}

// Comprehensive returns every metric from one consistent read. Unlike
// the per-metric routes it does not persist anything.
func (h *InsightHandler) Comprehensive(c echo.Context) error {
	businessID, err := pathID(c, "business_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid business id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	snap, err := h.Insights.Snapshot(ctx, businessID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "compute insights failed"})
	}

	profit := model.Profit(snap.Revenue, snap.COGS)
	metrics := []model.MetricValue{
		{Metric: model.MetricTotalRevenue, Value: snap.Revenue.Round(2)},
		{Metric: model.MetricTotalProfit, Value: profit},
		{Metric: model.MetricTotalLosses, Value: model.Loss(profit)},
		{Metric: model.MetricInventoryValue, Value: snap.InventoryValue.Round(2)},
		{Metric: model.MetricAverageSalesPrice, Value: model.AverageSalesPrice(snap.Revenue, snap.SalesCount)},
	}
	return c.JSON(http.StatusOK, metrics)
}

func (h *InsightHandler) recordMetric(c echo.Context, record func(context.Context, uint64) (model.Insight, error)) error {
	businessID, err := pathID(c, "business_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid business id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	ins, err := record(ctx, businessID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "compute metric failed"})
	}
	return c.JSON(http.StatusCreated, ins)
}
