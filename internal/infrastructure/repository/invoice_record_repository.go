package repository

import (
	"context"
	"errors"

	"github.com/elarose/elarose-api/internal/domain/entity"
	domainRepo "github.com/elarose/elarose-api/internal/domain/repository"
	"github.com/elarose/elarose-api/pkg/pagination"
	"gorm.io/gorm"
)

type invoiceRecordRepository struct {
	db *gorm.DB
}

// NewInvoiceRecordRepository creates a new invoice record repository
func NewInvoiceRecordRepository(db *gorm.DB) domainRepo.InvoiceRecordRepository {
	return &invoiceRecordRepository{db: db}
}

func (r *invoiceRecordRepository) Create(ctx context.Context, record *entity.InvoiceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *invoiceRecordRepository) GetByFilename(ctx context.Context, filename string) (*entity.InvoiceRecord, error) {
	var record entity.InvoiceRecord
	err := r.db.WithContext(ctx).First(&record, "filename = ?", filename).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *invoiceRecordRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.InvoiceRecord, int64, error) {
	var records []entity.InvoiceRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InvoiceRecord{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("generated_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&records).Error

	return records, total, err
}

func (r *invoiceRecordRepository) ListByOrderID(ctx context.Context, orderID string) ([]entity.InvoiceRecord, error) {
	var records []entity.InvoiceRecord
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("generated_at DESC").
		Find(&records).Error
	return records, err
}
