package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metric values serialize as JSON numbers (25.0), not quoted strings,
// to keep the response shapes consumable by clients expecting numeric
// fields.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Insight is a persisted snapshot of a single computed metric for one
// business at a point in time. The insights table is an append-only
// history: every computation inserts a new row, there is no upsert.
type Insight struct {
	ID         uint64          `json:"id"`
	BusinessID uint64          `json:"business_id"`
	Metric     string          `json:"metric"`
	Value      decimal.Decimal `json:"value"`
	RecordedAt time.Time       `json:"recorded_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MetricValue is one entry of the comprehensive (read-only) insight view.
type MetricValue struct {
	Metric string          `json:"metric"`
	Value  decimal.Decimal `json:"value"`
}
