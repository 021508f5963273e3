package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/business-insights/internal/model"
)

// InventoryRepo persists inventory items.
type InventoryRepo struct{ DB *sql.DB }

func NewInventoryRepo(db *sql.DB) *InventoryRepo { return &InventoryRepo{DB: db} }

// Create inserts an inventory item and returns the stored row.
func (r *InventoryRepo) Create(ctx context.Context, businessID uint64, itemName string, description *string, quantity int, pricePerUnit decimal.Decimal) (model.InventoryItem, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO inventory (business_id, item_name, description, quantity, price_per_unit) VALUES (?,?,?,?,?)",
		businessID, itemName, description, quantity, pricePerUnit)
	if err != nil {
		return model.InventoryItem{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.InventoryItem{}, err
	}
	row := r.DB.QueryRowContext(ctx,
		"SELECT id,business_id,item_name,description,quantity,price_per_unit,created_at FROM inventory WHERE id=? LIMIT 1",
		uint64(id))
	var (
		item model.InventoryItem
		desc sql.NullString
	)
	if err := row.Scan(&item.ID, &item.BusinessID, &item.ItemName, &desc,
		&item.Quantity, &item.PricePerUnit, &item.CreatedAt); err != nil {
		return model.InventoryItem{}, err
	}
	if desc.Valid {
		item.Description = &desc.String
	}
	return item, nil
}

// ListByBusiness returns all inventory items of one business, oldest first.
func (r *InventoryRepo) ListByBusiness(ctx context.Context, businessID uint64) ([]model.InventoryItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,business_id,item_name,description,quantity,price_per_unit,created_at FROM inventory WHERE business_id=? ORDER BY id",
		businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.InventoryItem{}
	for rows.Next() {
		var (
			item model.InventoryItem
			desc sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.BusinessID, &item.ItemName, &desc,
			&item.Quantity, &item.PricePerUnit, &item.CreatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			item.Description = &desc.String
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
