package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked item belonging to one business. Quantity is
// never negative; PricePerUnit is a fixed-point DECIMAL(10,2). Sales
// reference an item but do not decrement its quantity automatically.
type InventoryItem struct {
	ID           uint64          `json:"id"`
	BusinessID   uint64          `json:"business_id"`
	ItemName     string          `json:"item_name"`
	Description  *string         `json:"description,omitempty"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	CreatedAt    time.Time       `json:"created_at"`
}
