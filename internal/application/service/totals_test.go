package service

import (
	"testing"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lineItems(totals ...float64) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, entity.LineItem{LineTotal: decimal.NewFromFloat(t)})
	}
	return items
}

func TestComputeTotalsSumsLineItems(t *testing.T) {
	got := ComputeTotals(lineItems(10, 20.50, 4.49), entity.RawOrder{
		"shippingCost": 5.0,
		"tax":          "2.80",
	})

	assert.Equal(t, "34.99", got.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", got.ShippingCost.StringFixed(2))
	assert.Equal(t, "2.80", got.Tax.StringFixed(2))
	assert.Equal(t, "42.79", got.GrandTotal.StringFixed(2))
}

func TestComputeTotalsExplicitTotalWins(t *testing.T) {
	// an explicit order total is trusted over the computed sum even when
	// they disagree
	got := ComputeTotals(lineItems(25, 25), entity.RawOrder{"totalAmount": 75.0})

	assert.Equal(t, "50.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "75.00", got.GrandTotal.StringFixed(2))
}

func TestComputeTotalsEmptyInput(t *testing.T) {
	got := ComputeTotals(nil, entity.RawOrder{})

	assert.Equal(t, "0.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", got.ShippingCost.StringFixed(2))
	assert.Equal(t, "0.00", got.Tax.StringFixed(2))
	assert.Equal(t, "0.00", got.GrandTotal.StringFixed(2))
}

func TestComputeTotalsMalformedFieldsDefaultToZero(t *testing.T) {
	got := ComputeTotals(lineItems(10), entity.RawOrder{
		"shippingCost": "on the house",
		"tax":          nil,
		"totalAmount":  "not a number",
	})

	assert.Equal(t, "0.00", got.ShippingCost.StringFixed(2))
	assert.Equal(t, "0.00", got.Tax.StringFixed(2))
	assert.Equal(t, "10.00", got.GrandTotal.StringFixed(2))
}
