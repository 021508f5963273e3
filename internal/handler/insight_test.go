package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/business-insights/internal/model"
	"github.com/iliyamo/business-insights/internal/repository"
)

const (
	revenueSQL    = "SELECT COALESCE(SUM(total_price),0) FROM sales WHERE business_id=?"
	cogsSQL       = "SELECT COALESCE(SUM(s.quantity_sold * i.price_per_unit),0) FROM sales s JOIN inventory i ON s.inventory_id=i.id WHERE s.business_id=?"
	stockSQL      = "SELECT COALESCE(SUM(quantity * price_per_unit),0) FROM inventory WHERE business_id=?"
	countSQL      = "SELECT COUNT(id) FROM sales WHERE business_id=?"
	insertSQL     = "INSERT INTO insights (business_id, metric, value, recorded_at) VALUES (?,?,?,?)"
	selectBackSQL = "SELECT id,business_id,metric,value,recorded_at,created_at FROM insights WHERE id=? LIMIT 1"
)

func newInsightHandler(t *testing.T) (*InsightHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewInsightHandler(repository.NewInsightRepo(db)), mock
}

func getRequest(t *testing.T, path, businessID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("business_id")
	c.SetParamValues(businessID)
	return c, rec
}

func sumRowOf(v string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"v"}).AddRow(v)
}

func TestInsightRevenuePersistsRow(t *testing.T) {
	h, mock := newInsightHandler(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(revenueSQL).WithArgs(uint64(7)).WillReturnRows(sumRowOf("25"))
	mock.ExpectExec(insertSQL).
		WithArgs(uint64(7), model.MetricTotalRevenue, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(selectBackSQL).WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "metric", "value", "recorded_at", "created_at"}).
			AddRow(1, 7, model.MetricTotalRevenue, "25.00", now, now))
	mock.ExpectCommit()

	c, rec := getRequest(t, "/insights/total_revenue/7", "7")
	require.NoError(t, h.Revenue(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.MetricTotalRevenue, body["metric"])
	assert.Equal(t, float64(25), body["value"]) // decimals serialize as JSON numbers
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightInvalidBusinessID(t *testing.T) {
	h, _ := newInsightHandler(t)
	c, rec := getRequest(t, "/insights/total_revenue/abc", "abc")
	require.NoError(t, h.Revenue(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInsightComprehensive(t *testing.T) {
	h, mock := newInsightHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(revenueSQL).WithArgs(uint64(7)).WillReturnRows(sumRowOf("25"))
	mock.ExpectQuery(cogsSQL).WithArgs(uint64(7)).WillReturnRows(sumRowOf("20"))
	mock.ExpectQuery(stockSQL).WithArgs(uint64(7)).WillReturnRows(sumRowOf("50"))
	mock.ExpectQuery(countSQL).WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	c, rec := getRequest(t, "/insights/comprehensive/7", "7")
	require.NoError(t, h.Comprehensive(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// The body is a bare array of {metric, value} pairs, no envelope.
	var metrics []model.MetricValue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	require.Len(t, metrics, 5)

	byMetric := map[string]string{}
	for _, m := range metrics {
		byMetric[m.Metric] = m.Value.StringFixed(2)
	}
	assert.Equal(t, "25.00", byMetric[model.MetricTotalRevenue])
	assert.Equal(t, "5.00", byMetric[model.MetricTotalProfit])
	assert.Equal(t, "0.00", byMetric[model.MetricTotalLosses])
	assert.Equal(t, "50.00", byMetric[model.MetricInventoryValue])
	assert.Equal(t, "25.00", byMetric[model.MetricAverageSalesPrice])

	// Order mirrors the persisted metric set.
	assert.Equal(t, model.MetricTotalRevenue, metrics[0].Metric)
	assert.Equal(t, model.MetricAverageSalesPrice, metrics[4].Metric)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsightComprehensiveZeroSales(t *testing.T) {
	h, mock := newInsightHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(revenueSQL).WithArgs(uint64(9)).WillReturnRows(sumRowOf("0"))
	mock.ExpectQuery(cogsSQL).WithArgs(uint64(9)).WillReturnRows(sumRowOf("0"))
	mock.ExpectQuery(stockSQL).WithArgs(uint64(9)).WillReturnRows(sumRowOf("0"))
	mock.ExpectQuery(countSQL).WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	c, rec := getRequest(t, "/insights/comprehensive/9", "9")
	require.NoError(t, h.Comprehensive(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var metrics []model.MetricValue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	require.Len(t, metrics, 5)
	for _, m := range metrics {
		assert.True(t, m.Value.IsZero(), "%s = %s", m.Metric, m.Value)
	}
}

func TestInsightList(t *testing.T) {
	h, mock := newInsightHandler(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id,business_id,metric,value,recorded_at,created_at FROM insights WHERE business_id=? ORDER BY id").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "metric", "value", "recorded_at", "created_at"}).
			AddRow(1, 7, model.MetricTotalRevenue, "25.00", now, now))

	c, rec := getRequest(t, "/insights/7", "7")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []model.Insight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, model.MetricTotalRevenue, rows[0].Metric)
}
