package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/elarose/elarose-api/internal/domain/repository"
	"github.com/elarose/elarose-api/pkg/apperror"
	"github.com/elarose/elarose-api/pkg/pagination"
	"github.com/elarose/elarose-api/pkg/pdf"
	"go.uber.org/zap"
)

// InvoiceService converts raw checkout orders into printable PDF invoices,
// saves the artifact under the configured storage path and archives each
// generation.
type InvoiceService struct {
	records     repository.InvoiceRecordRepository
	logger      *zap.Logger
	storagePath string
	newCanvas   func() pdf.Canvas
	now         func() time.Time
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(records repository.InvoiceRecordRepository, logger *zap.Logger, storagePath string) *InvoiceService {
	return &InvoiceService{
		records:     records,
		logger:      logger,
		storagePath: storagePath,
		newCanvas:   pdf.NewA4Canvas,
		now:         time.Now,
	}
}

// GenerateInvoice runs the full pipeline: normalize, lay out, total, emit.
// The order and response records may be arbitrarily incomplete; only a
// canvas or delivery failure aborts the call, and no partial artifact is
// delivered on failure.
func (s *InvoiceService) GenerateInvoice(ctx context.Context, order entity.RawOrder, resp entity.OrderResponse) (*entity.InvoiceDocument, error) {
	now := s.now()

	inv := Normalize(order, resp, now)
	totals := ComputeTotals(inv.Items, order)

	canvas := s.newCanvas()
	renderInvoice(canvas, inv, totals)

	data, err := canvas.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice: %w", err)
	}

	doc := &entity.InvoiceDocument{
		Filename: InvoiceFilename(inv.OrderID, now),
		Bytes:    data,
	}

	if err := s.saveArtifact(doc); err != nil {
		return nil, fmt.Errorf("failed to generate invoice: %w", err)
	}

	// The artifact is already delivered; archiving is best effort.
	record := entity.NewInvoiceRecord(inv.OrderID, doc.Filename, totals, len(inv.Items), now)
	if err := s.records.Create(ctx, record); err != nil {
		s.logger.Warn("failed to archive invoice record",
			zap.String("order_id", inv.OrderID),
			zap.String("filename", doc.Filename),
			zap.Error(err),
		)
	}

	s.logger.Info("invoice generated",
		zap.String("order_id", inv.OrderID),
		zap.String("filename", doc.Filename),
		zap.Int("items", len(inv.Items)),
		zap.String("grand_total", totals.GrandTotal.StringFixed(2)),
	)

	return doc, nil
}

// GenerateTestInvoice renders a fixture invoice, useful for verifying the
// layout and storage setup without a storefront order.
func (s *InvoiceService) GenerateTestInvoice(ctx context.Context) (*entity.InvoiceDocument, error) {
	order := entity.RawOrder{
		"customerName": "Test Customer",
		"email":        "test@elarose.com",
		"phone":        "+1 555 000 0000",
		"address":      "123 Fashion Street, Suite 4, Springfield",
		"items": []any{
			map[string]any{"productName": "Floral Summer Dress", "price": 49.99, "quantity": 1, "selectedSize": "M", "colorName": "Rose"},
			map[string]any{"productName": "Silk Scarf", "price": 19.50, "quantity": 2},
		},
		"shippingCost":  0,
		"tax":           7.12,
		"paymentMethod": "Cash on Delivery",
	}
	resp := entity.OrderResponse{"orderId": "TEST-001", "status": "Confirmed"}

	return s.GenerateInvoice(ctx, order, resp)
}

// ListInvoices returns archived invoice records, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InvoiceRecord], error) {
	params.Validate()

	records, total, err := s.records.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(records, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListInvoicesByOrder returns every archived generation for one order,
// newest first. Regenerating an invoice yields one record per run.
func (s *InvoiceService) ListInvoicesByOrder(ctx context.Context, orderID string) ([]entity.InvoiceRecord, error) {
	return s.records.ListByOrderID(ctx, orderID)
}

// LoadArtifact reads a previously saved invoice PDF from storage. The
// filename must belong to an archived record.
func (s *InvoiceService) LoadArtifact(ctx context.Context, filename string) ([]byte, error) {
	record, err := s.records.GetByFilename(ctx, filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	data, err := os.ReadFile(filepath.Join(s.storagePath, record.Filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NewNotFoundError("Invoice artifact")
		}
		return nil, fmt.Errorf("failed to read invoice artifact: %w", err)
	}
	return data, nil
}

func (s *InvoiceService) saveArtifact(doc *entity.InvoiceDocument) error {
	if err := os.MkdirAll(s.storagePath, 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.storagePath, doc.Filename), doc.Bytes, 0644); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	return nil
}

// InvoiceFilename derives the deterministic artifact name from the order id
// and the generation date (date component only, no time of day).
func InvoiceFilename(orderID string, now time.Time) string {
	return fmt.Sprintf("ElaRose-Invoice-%s-%s.pdf", orderID, now.Format("2006-01-02"))
}
