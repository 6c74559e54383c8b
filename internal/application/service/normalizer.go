package service

import (
	"fmt"
	"time"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Fallbacks used when the checkout omits a field. The checkout flow is not
// guaranteed to supply a complete record, so normalization never fails.
const (
	defaultCustomerName  = "Valued Customer"
	defaultContact       = "N/A"
	defaultProductName   = "Product"
	defaultPaymentMethod = "Cash on Delivery"
	defaultStatus        = "Confirmed"
	oneSizeSentinel      = "One Size"
)

// Normalize converts a raw order plus its capture response into the
// canonical invoice model. It is total over arbitrary input: every missing
// or malformed field degrades to its documented default. now is used only
// for the generated fallback order id.
func Normalize(order entity.RawOrder, resp entity.OrderResponse, now time.Time) entity.NormalizedOrder {
	inv := entity.NormalizedOrder{
		OrderID:       resolveOrderID(order, resp, now),
		Status:        stringOrDefault(resp.Field("status"), defaultStatus),
		PaymentMethod: stringOrDefault(order.Field("paymentMethod"), defaultPaymentMethod),
		Customer: entity.CustomerInfo{
			Name:    stringOrDefault(order.Field("customerName"), defaultCustomerName),
			Email:   stringOrDefault(order.Field("email"), defaultContact),
			Phone:   stringOrDefault(order.Field("phone"), defaultContact),
			Address: trimmedString(order.Field("address")),
		},
	}

	if items, ok := order.Items(); ok {
		inv.Items = make([]entity.LineItem, 0, len(items))
		for _, raw := range items {
			item, _ := raw.(map[string]any)
			inv.Items = append(inv.Items, normalizeItem(entity.RawOrder(item), nil))
		}
	} else {
		// Buy-now orders carry the product fields at the top level and may
		// supply an explicit total that overrides price * quantity.
		inv.Items = []entity.LineItem{normalizeItem(order, order.Field("totalAmount"))}
	}

	return inv
}

func normalizeItem(item entity.RawOrder, explicitTotal any) entity.LineItem {
	price := parseMoneyOrDefault(item.Field("price"), decimal.Zero)
	qty := parseQuantityOrDefault(item.Field("quantity"), 1)

	name := trimmedString(item.Field("productName"))
	if name == "" {
		name = trimmedString(item.Field("name"))
	}
	if name == "" {
		name = defaultProductName
	}

	size := trimmedString(item.Field("selectedSize"))
	if size == oneSizeSentinel {
		size = ""
	}

	total := price.Mul(decimal.NewFromInt(int64(qty)))
	if explicit, ok := parseMoney(explicitTotal); ok {
		total = explicit
	}

	return entity.LineItem{
		Name:      name,
		UnitPrice: price,
		Quantity:  qty,
		Size:      size,
		Color:     trimmedString(item.Field("colorName")),
		LineTotal: total,
	}
}

func resolveOrderID(order entity.RawOrder, resp entity.OrderResponse, now time.Time) string {
	if id := trimmedString(resp.Field("orderId")); id != "" {
		return id
	}
	if id := trimmedString(order.Field("orderId")); id != "" {
		return id
	}
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}
