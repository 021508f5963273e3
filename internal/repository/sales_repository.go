package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/business-insights/internal/model"
)

// SalesRepo persists sale records. Sales are append-only; there is no
// update or delete path.
type SalesRepo struct{ DB *sql.DB }

func NewSalesRepo(db *sql.DB) *SalesRepo { return &SalesRepo{DB: db} }

// Create inserts a sale and returns the stored row.
func (r *SalesRepo) Create(ctx context.Context, businessID, inventoryID uint64, quantitySold int, totalPrice decimal.Decimal, soldAt time.Time) (model.Sale, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sales (business_id, inventory_id, quantity_sold, total_price, sold_at) VALUES (?,?,?,?,?)",
		businessID, inventoryID, quantitySold, totalPrice, soldAt.UTC())
	if err != nil {
		return model.Sale{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Sale{}, err
	}
	var s model.Sale
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,business_id,inventory_id,quantity_sold,total_price,sold_at,created_at FROM sales WHERE id=? LIMIT 1",
		uint64(id)).Scan(&s.ID, &s.BusinessID, &s.InventoryID, &s.QuantitySold, &s.TotalPrice, &s.SoldAt, &s.CreatedAt)
	if err != nil {
		return model.Sale{}, err
	}
	return s, nil
}
