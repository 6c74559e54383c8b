package request

import "github.com/elarose/elarose-api/internal/domain/entity"

// GenerateInvoiceRequest is the request body for generating an invoice.
// Order is the raw checkout record; OrderResponse is the optional
// order-capture response carrying the resolved order id and status.
type GenerateInvoiceRequest struct {
	Order         entity.RawOrder      `json:"order" binding:"required"`
	OrderResponse entity.OrderResponse `json:"orderResponse"`
}
