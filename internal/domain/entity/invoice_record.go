package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceRecord is the archive entry written after a successful invoice
// generation. Monetary fields are stored in cents.
type InvoiceRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     string    `gorm:"size:100;not null;index" json:"order_id"`
	Filename    string    `gorm:"size:255;not null;uniqueIndex" json:"filename"`
	ItemCount   int       `gorm:"default:0" json:"item_count"`
	Subtotal    int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Shipping    int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax         int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	GrandTotal  int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewInvoiceRecord builds an archive entry from the generation result.
func NewInvoiceRecord(orderID, filename string, totals InvoiceTotals, itemCount int, generatedAt time.Time) *InvoiceRecord {
	return &InvoiceRecord{
		OrderID:     orderID,
		Filename:    filename,
		ItemCount:   itemCount,
		Subtotal:    toCents(totals.Subtotal),
		Shipping:    toCents(totals.ShippingCost),
		Tax:         toCents(totals.Tax),
		GrandTotal:  toCents(totals.GrandTotal),
		GeneratedAt: generatedAt,
	}
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r InvoiceRecord) MarshalJSON() ([]byte, error) {
	type Alias InvoiceRecord
	return json.Marshal(&struct {
		Alias
		Subtotal   float64 `json:"subtotal"`
		Shipping   float64 `json:"shipping"`
		Tax        float64 `json:"tax"`
		GrandTotal float64 `json:"grand_total"`
	}{
		Alias:      Alias(r),
		Subtotal:   float64(r.Subtotal) / 100,
		Shipping:   float64(r.Shipping) / 100,
		Tax:        float64(r.Tax) / 100,
		GrandTotal: float64(r.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice record
func (r *InvoiceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceRecord model
func (InvoiceRecord) TableName() string {
	return "invoice_records"
}
