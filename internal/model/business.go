package model

import "time"

// Business is owned by exactly one user. Inventory, sales and insights
// all hang off a business; cross-business references are not permitted.
type Business struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
