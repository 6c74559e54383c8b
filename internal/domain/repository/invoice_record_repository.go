package repository

import (
	"context"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/elarose/elarose-api/pkg/pagination"
)

// InvoiceRecordRepository defines the interface for invoice archive operations
type InvoiceRecordRepository interface {
	Create(ctx context.Context, record *entity.InvoiceRecord) error
	GetByFilename(ctx context.Context, filename string) (*entity.InvoiceRecord, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.InvoiceRecord, int64, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entity.InvoiceRecord, error)
}
