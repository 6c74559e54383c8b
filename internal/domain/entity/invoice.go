package entity

import "github.com/shopspring/decimal"

// LineItem is a single normalized product entry on an invoice.
// LineTotal is UnitPrice * Quantity except on the buy-now path, where an
// explicit order total takes precedence and UnitPrice/Quantity are kept
// for display only.
type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CustomerInfo holds the resolved billing contact. Name/Email/Phone carry
// placeholder defaults when the checkout omitted them; Address is empty
// when none was supplied and is then left off the invoice entirely.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// NormalizedOrder is the canonical order produced from either input shape.
// Everything downstream of the normalizer operates on this type only.
type NormalizedOrder struct {
	OrderID       string       `json:"order_id"`
	Status        string       `json:"status"`
	PaymentMethod string       `json:"payment_method"`
	Customer      CustomerInfo `json:"customer"`
	Items         []LineItem   `json:"items"`
}

// InvoiceTotals holds the derived monetary totals for one invoice.
// GrandTotal defers to an explicitly supplied order total even when it
// disagrees with Subtotal + ShippingCost + Tax.
type InvoiceTotals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Tax          decimal.Decimal `json:"tax"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// InvoiceDocument is the emitted artifact: PDF bytes plus the derived
// filename. It is built once per generation and never mutated.
type InvoiceDocument struct {
	Filename string `json:"filename"`
	Bytes    []byte `json:"-"`
}
