package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/business-insights/internal/model"
)

// InsightRepo computes aggregate metrics over sales and inventory and
// persists them as append-only insight rows. Each Record* method runs
// read-aggregate-then-insert inside one transaction so the stored value
// always matches the data it was computed from. Snapshot reads all
// aggregates in one transaction without writing anything.
type InsightRepo struct{ DB *sql.DB }

func NewInsightRepo(db *sql.DB) *InsightRepo { return &InsightRepo{DB: db} }

// querier is the subset of *sql.DB / *sql.Tx the aggregate queries need.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// MetricSnapshot holds the raw aggregates of one consistent read.
// Derived values (profit, loss, average price) are computed from these
// by the model package.
type MetricSnapshot struct {
	Revenue        decimal.Decimal
	COGS           decimal.Decimal
	InventoryValue decimal.Decimal
	SalesCount     int64
}

const (
	qRevenue = "SELECT COALESCE(SUM(total_price),0) FROM sales WHERE business_id=?"
	qCOGS    = "SELECT COALESCE(SUM(s.quantity_sold * i.price_per_unit),0) " +
		"FROM sales s JOIN inventory i ON s.inventory_id=i.id WHERE s.business_id=?"
	qInventoryValue = "SELECT COALESCE(SUM(quantity * price_per_unit),0) FROM inventory WHERE business_id=?"
	qSalesCount     = "SELECT COUNT(id) FROM sales WHERE business_id=?"
)

// RecordTotalRevenue computes total revenue and appends an insight row.
func (r *InsightRepo) RecordTotalRevenue(ctx context.Context, businessID uint64) (model.Insight, error) {
	return r.record(ctx, businessID, func(tx *sql.Tx) (string, decimal.Decimal, error) {
		rev, err := sumQuery(ctx, tx, qRevenue, businessID)
		return model.MetricTotalRevenue, rev, err
	})
}

// RecordTotalProfit computes revenue minus COGS and appends an insight row.
func (r *InsightRepo) RecordTotalProfit(ctx context.Context, businessID uint64) (model.Insight, error) {
	return r.record(ctx, businessID, func(tx *sql.Tx) (string, decimal.Decimal, error) {
		rev, err := sumQuery(ctx, tx, qRevenue, businessID)
		if err != nil {
			return "", decimal.Zero, err
		}
		cogs, err := sumQuery(ctx, tx, qCOGS, businessID)
		if err != nil {
			return "", decimal.Zero, err
		}
		return model.MetricTotalProfit, model.Profit(rev, cogs), nil
	})
}

// RecordInventoryValue computes the current stock value and appends an
// insight row.
func (r *InsightRepo) RecordInventoryValue(ctx context.Context, businessID uint64) (model.Insight, error) {
	return r.record(ctx, businessID, func(tx *sql.Tx) (string, decimal.Decimal, error) {
		v, err := sumQuery(ctx, tx, qInventoryValue, businessID)
		return model.MetricInventoryValue, v, err
	})
}

// Snapshot reads every aggregate in a single transaction. Nothing is
// written, so the result is not guaranteed to match the latest persisted
// insight rows.
func (r *InsightRepo) Snapshot(ctx context.Context, businessID uint64) (MetricSnapshot, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return MetricSnapshot{}, err
	}
	defer tx.Rollback()

	var snap MetricSnapshot
	if snap.Revenue, err = sumQuery(ctx, tx, qRevenue, businessID); err != nil {
		return MetricSnapshot{}, err
	}
	if snap.COGS, err = sumQuery(ctx, tx, qCOGS, businessID); err != nil {
		return MetricSnapshot{}, err
	}
	if snap.InventoryValue, err = sumQuery(ctx, tx, qInventoryValue, businessID); err != nil {
		return MetricSnapshot{}, err
	}
	if err = tx.QueryRowContext(ctx, qSalesCount, businessID).Scan(&snap.SalesCount); err != nil {
		return MetricSnapshot{}, err
	}
	if err := tx.Commit(); err != nil {
		return MetricSnapshot{}, err
	}
	return snap, nil
}

// ListByBusiness returns the full insight history of a business, oldest
// row first.
func (r *InsightRepo) ListByBusiness(ctx context.Context, businessID uint64) ([]model.Insight, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,business_id,metric,value,recorded_at,created_at FROM insights WHERE business_id=? ORDER BY id",
		businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Insight{}
	for rows.Next() {
		var ins model.Insight
		if err := rows.Scan(&ins.ID, &ins.BusinessID, &ins.Metric, &ins.Value,
			&ins.RecordedAt, &ins.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, rows.Err()
}

// record runs compute inside a transaction, inserts the resulting metric
// and returns the stored row.
func (r *InsightRepo) record(ctx context.Context, businessID uint64, compute func(tx *sql.Tx) (string, decimal.Decimal, error)) (model.Insight, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Insight{}, err
	}
	defer tx.Rollback()

	metric, value, err := compute(tx)
	if err != nil {
		return model.Insight{}, err
	}

	recordedAt := time.Now().UTC()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO insights (business_id, metric, value, recorded_at) VALUES (?,?,?,?)",
		businessID, metric, value.Round(2), recordedAt)
	if err != nil {
		return model.Insight{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Insight{}, err
	}

	var ins model.Insight
	err = tx.QueryRowContext(ctx,
		"SELECT id,business_id,metric,value,recorded_at,created_at FROM insights WHERE id=? LIMIT 1",
		uint64(id)).Scan(&ins.ID, &ins.BusinessID, &ins.Metric, &ins.Value, &ins.RecordedAt, &ins.CreatedAt)
	if err != nil {
		return model.Insight{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Insight{}, err
	}
	return ins, nil
}

// sumQuery runs a single-value aggregate and scans it into a decimal.
func sumQuery(ctx context.Context, q querier, query string, businessID uint64) (decimal.Decimal, error) {
	var v decimal.Decimal
	if err := q.QueryRowContext(ctx, query, businessID).Scan(&v); err != nil {
		return decimal.Zero, err
	}
	return v, nil
}
