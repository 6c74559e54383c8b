package service

import (
	"strings"
	"testing"
	"time"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNormalizeEmptyInput(t *testing.T) {
	inv := Normalize(entity.RawOrder{}, entity.OrderResponse{}, testNow)

	assert.True(t, strings.HasPrefix(inv.OrderID, "INV-"))
	assert.Equal(t, "Confirmed", inv.Status)
	assert.Equal(t, "Cash on Delivery", inv.PaymentMethod)
	assert.Equal(t, "Valued Customer", inv.Customer.Name)
	assert.Equal(t, "N/A", inv.Customer.Email)
	assert.Equal(t, "N/A", inv.Customer.Phone)
	assert.Empty(t, inv.Customer.Address)

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	assert.Equal(t, "Product", item.Name)
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.UnitPrice.IsZero())
	assert.True(t, item.LineTotal.IsZero())
}

func TestNormalizeNilInput(t *testing.T) {
	inv := Normalize(nil, nil, testNow)

	assert.True(t, strings.HasPrefix(inv.OrderID, "INV-"))
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Product", inv.Items[0].Name)
}

func TestNormalizeMultiItemOrder(t *testing.T) {
	order := entity.RawOrder{
		"customerName": "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "+1 555 123 4567",
		"address":      "42 Rose Lane",
		"items": []any{
			map[string]any{"productName": "Summer Dress", "price": 49.99, "quantity": 2, "selectedSize": "M", "colorName": "Rose"},
			map[string]any{"name": "Silk Scarf", "price": "19.50", "quantity": "1"},
			map[string]any{"price": 5.0},
		},
	}
	resp := entity.OrderResponse{"orderId": "ORD-123", "status": "Shipped"}

	inv := Normalize(order, resp, testNow)

	assert.Equal(t, "ORD-123", inv.OrderID)
	assert.Equal(t, "Shipped", inv.Status)
	assert.Equal(t, "Jane Doe", inv.Customer.Name)
	require.Len(t, inv.Items, 3)

	assert.Equal(t, "Summer Dress", inv.Items[0].Name)
	assert.Equal(t, 2, inv.Items[0].Quantity)
	assert.Equal(t, "M", inv.Items[0].Size)
	assert.Equal(t, "Rose", inv.Items[0].Color)
	assert.Equal(t, "99.98", inv.Items[0].LineTotal.StringFixed(2))

	// name falls back to the "name" key, string numerics are coerced
	assert.Equal(t, "Silk Scarf", inv.Items[1].Name)
	assert.Equal(t, "19.50", inv.Items[1].LineTotal.StringFixed(2))

	// item with nothing but a price
	assert.Equal(t, "Product", inv.Items[2].Name)
	assert.Equal(t, 1, inv.Items[2].Quantity)
	assert.Equal(t, "5.00", inv.Items[2].LineTotal.StringFixed(2))
}

func TestNormalizeEmptyItemsSequence(t *testing.T) {
	inv := Normalize(entity.RawOrder{"items": []any{}}, nil, testNow)
	assert.Empty(t, inv.Items)
}

func TestNormalizeSingleItemOrder(t *testing.T) {
	order := entity.RawOrder{
		"productName":  "Evening Gown",
		"price":        120.0,
		"quantity":     1,
		"selectedSize": "S",
		"colorName":    "Black",
	}

	inv := Normalize(order, nil, testNow)

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	assert.Equal(t, "Evening Gown", item.Name)
	assert.Equal(t, "S", item.Size)
	assert.Equal(t, "Black", item.Color)
	assert.Equal(t, "120.00", item.LineTotal.StringFixed(2))
}

func TestNormalizeSingleItemExplicitTotalWins(t *testing.T) {
	order := entity.RawOrder{
		"productName": "Evening Gown",
		"price":       25.0,
		"quantity":    2,
		"totalAmount": 75.0,
	}

	inv := Normalize(order, nil, testNow)

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	// the explicit total overrides price * quantity; both are retained
	// for display
	assert.Equal(t, "75.00", item.LineTotal.StringFixed(2))
	assert.Equal(t, "25.00", item.UnitPrice.StringFixed(2))
	assert.Equal(t, 2, item.Quantity)
}

func TestNormalizeOneSizeHidden(t *testing.T) {
	order := entity.RawOrder{
		"productName":  "Tote Bag",
		"selectedSize": "One Size",
	}

	inv := Normalize(order, nil, testNow)

	require.Len(t, inv.Items, 1)
	assert.Empty(t, inv.Items[0].Size)
}

func TestResolveOrderIDPrecedence(t *testing.T) {
	order := entity.RawOrder{"orderId": "ORD-FROM-ORDER"}
	resp := entity.OrderResponse{"orderId": "ORD-FROM-RESPONSE"}

	assert.Equal(t, "ORD-FROM-RESPONSE", resolveOrderID(order, resp, testNow))
	assert.Equal(t, "ORD-FROM-ORDER", resolveOrderID(order, nil, testNow))
	assert.Equal(t, "INV-1710498600000", resolveOrderID(nil, nil, testNow))
}
