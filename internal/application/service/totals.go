package service

import (
	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ComputeTotals derives the invoice totals from the normalized line items
// and the raw order's monetary fields. An explicitly supplied order total
// is authoritative even when it disagrees with the computed sum; the
// engine never flags the mismatch.
func ComputeTotals(items []entity.LineItem, order entity.RawOrder) entity.InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}

	totals := entity.InvoiceTotals{
		Subtotal:     subtotal,
		ShippingCost: parseMoneyOrDefault(order.Field("shippingCost"), decimal.Zero),
		Tax:          parseMoneyOrDefault(order.Field("tax"), decimal.Zero),
	}

	if explicit, ok := parseMoney(order.Field("totalAmount")); ok {
		totals.GrandTotal = explicit
	} else {
		totals.GrandTotal = subtotal.Add(totals.ShippingCost).Add(totals.Tax)
	}

	return totals
}
