package model

import "github.com/shopspring/decimal"

// Metric names persisted in the insights table.
const (
	MetricTotalRevenue      = "total_revenue"
	MetricTotalProfit       = "total_profit"
	MetricTotalLosses       = "total_losses"
	MetricInventoryValue    = "inventory_value"
	MetricAverageSalesPrice = "average_sales_price"
)

// Profit is revenue minus cost of goods sold, rounded to 2 decimals.
func Profit(revenue, cogs decimal.Decimal) decimal.Decimal {
	return revenue.Sub(cogs).Round(2)
}

// Loss is the magnitude of a negative profit, zero otherwise.
func Loss(profit decimal.Decimal) decimal.Decimal {
	if profit.IsNegative() {
		return profit.Abs().Round(2)
	}
	return decimal.Zero.Round(2)
}

// AverageSalesPrice divides revenue by the number of sales. The
// denominator floors to 1 so a business with no sales reports 0.00
// instead of dividing by zero.
func AverageSalesPrice(revenue decimal.Decimal, salesCount int64) decimal.Decimal {
	if salesCount < 1 {
		salesCount = 1
	}
	return revenue.DivRound(decimal.NewFromInt(salesCount), 2)
}
