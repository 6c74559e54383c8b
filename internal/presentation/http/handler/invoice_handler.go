package handler

import (
	"fmt"
	"net/http"

	"github.com/elarose/elarose-api/internal/application/service"
	"github.com/elarose/elarose-api/internal/presentation/http/dto/request"
	"github.com/elarose/elarose-api/internal/presentation/http/dto/response"
	"github.com/elarose/elarose-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Generate builds a PDF invoice from a raw checkout order. The response is
// the PDF attachment, or a JSON summary when ?format=json is passed.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	doc, err := h.invoiceService.GenerateInvoice(c.Request.Context(), req.Order, req.OrderResponse)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "json" {
		response.Created(c, "Invoice generated successfully", gin.H{
			"filename": doc.Filename,
			"size":     len(doc.Bytes),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Bytes)
}

// GenerateTest renders a fixture invoice for verifying the layout and
// storage configuration.
func (h *InvoiceHandler) GenerateTest(c *gin.Context) {
	doc, err := h.invoiceService.GenerateTestInvoice(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test invoice generated", gin.H{
		"filename": doc.Filename,
		"size":     len(doc.Bytes),
	})
}

// List returns archived invoice records, optionally filtered to one order.
func (h *InvoiceHandler) List(c *gin.Context) {
	if orderID := c.Query("order_id"); orderID != "" {
		records, err := h.invoiceService.ListInvoicesByOrder(c.Request.Context(), orderID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Invoices retrieved successfully", records)
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Invoices retrieved successfully", result)
}

// Download streams a previously generated invoice artifact.
func (h *InvoiceHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	data, err := h.invoiceService.LoadArtifact(c.Request.Context(), filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
