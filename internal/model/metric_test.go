package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProfitPositive(t *testing.T) {
	// One sale of 2 units for 25 against stock priced 10 per unit.
	profit := Profit(dec("25"), dec("20"))
	assert.True(t, dec("5.00").Equal(profit), "profit = %s", profit)
	assert.True(t, Loss(profit).IsZero())
}

func TestProfitNegativeYieldsLoss(t *testing.T) {
	// Same stock, but the 2 units only fetched 10.
	profit := Profit(dec("10"), dec("20"))
	assert.True(t, dec("-10.00").Equal(profit), "profit = %s", profit)
	assert.True(t, dec("10.00").Equal(Loss(profit)))
}

func TestLossIsZeroAtBreakEven(t *testing.T) {
	assert.True(t, Loss(decimal.Zero).IsZero())
}

func TestAverageSalesPrice(t *testing.T) {
	assert.True(t, dec("25.00").Equal(AverageSalesPrice(dec("25"), 1)))
	assert.True(t, dec("12.50").Equal(AverageSalesPrice(dec("25"), 2)))
}

func TestAverageSalesPriceZeroSales(t *testing.T) {
	// The denominator floors to 1, so no sales reports 0 instead of
	// dividing by zero.
	got := AverageSalesPrice(decimal.Zero, 0)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestAverageSalesPriceRounds(t *testing.T) {
	got := AverageSalesPrice(dec("10"), 3)
	assert.True(t, dec("3.33").Equal(got), "got %s", got)
}
