package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records one transaction against an inventory item. TotalPrice is
// the amount actually charged and is independent of the item's unit
// price, so discounts and markups are representable. Rows are immutable
// once created.
type Sale struct {
	ID           uint64          `json:"id"`
	BusinessID   uint64          `json:"business_id"`
	InventoryID  uint64          `json:"inventory_id"`
	QuantitySold int             `json:"quantity_sold"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	SoldAt       time.Time       `json:"sold_at"`
	CreatedAt    time.Time       `json:"created_at"`
}
