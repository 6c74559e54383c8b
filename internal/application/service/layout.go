package service

import (
	"strconv"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/elarose/elarose-api/pkg/pdf"
	"github.com/shopspring/decimal"
)

// Layout geometry in page units (mm). The invoice is a single fixed A4 page.
const (
	lineH        = 6.0
	subLineH     = 4.0
	minRowH      = 8.0
	tableHeaderH = 8.0
	addressMaxW  = 100.0

	colItemX  = 22.0
	colQtyX   = 128.0 // right edge
	colPriceX = 156.0 // right edge
	colTotalX = 188.0 // right edge

	maxNameRunes   = 30
	truncNameRunes = 27
)

var (
	brandColor    = pdf.RGB{R: 236, G: 72, B: 153}
	textColor     = pdf.RGB{R: 33, G: 33, B: 33}
	mutedColor    = pdf.RGB{R: 120, G: 120, B: 120}
	bandFillColor = pdf.RGB{R: 243, G: 244, B: 246}
	whiteColor    = pdf.RGB{R: 255, G: 255, B: 255}
)

// layoutCursor is the running vertical position of the next block.
// It only ever moves down the page.
type layoutCursor struct {
	y float64
}

func (c *layoutCursor) advance(h float64) {
	c.y += h
}

type invoiceLayout struct {
	canvas pdf.Canvas
	cur    layoutCursor
}

// renderInvoice draws the full invoice onto the canvas in visual
// top-to-bottom order: header, customer block, item table, totals,
// payment/status lines and footer. The header, company block and footer
// sit at fixed coordinates; everything between threads the cursor.
func renderInvoice(canvas pdf.Canvas, inv entity.NormalizedOrder, totals entity.InvoiceTotals) {
	l := &invoiceLayout{canvas: canvas, cur: layoutCursor{y: 54}}
	l.drawHeader(inv)
	l.drawCompanyBlock()
	l.drawCustomerBlock(inv.Customer)
	l.drawTableHeader()
	for _, item := range inv.Items {
		l.drawRow(item)
	}
	l.drawSeparator()
	l.drawTotals(totals)
	l.drawPaymentStatus(inv)
	l.drawFooter()
}

func (l *invoiceLayout) drawHeader(inv entity.NormalizedOrder) {
	l.canvas.SetFont("Helvetica", "B", 24)
	l.canvas.SetTextColor(brandColor)
	l.canvas.Text(pdf.MarginLeft, 24, "ElaRose")

	l.canvas.SetFont("Helvetica", "B", 16)
	l.canvas.SetTextColor(textColor)
	l.canvas.TextRight(pdf.MarginLeft+pdf.ContentWidth, 24, "INVOICE")

	l.canvas.SetFont("Helvetica", "", 9)
	l.canvas.SetTextColor(mutedColor)
	l.canvas.TextRight(pdf.MarginLeft+pdf.ContentWidth, 31, "Invoice #: "+inv.OrderID)
}

func (l *invoiceLayout) drawCompanyBlock() {
	l.canvas.SetFont("Helvetica", "", 9)
	l.canvas.SetTextColor(mutedColor)
	l.canvas.Text(pdf.MarginLeft, 31, "ElaRose Fashion")
	l.canvas.Text(pdf.MarginLeft, 36, "www.elarose.com")
	l.canvas.Text(pdf.MarginLeft, 41, "support@elarose.com")

	l.canvas.SetDrawColor(brandColor)
	l.canvas.Line(pdf.MarginLeft, 46, pdf.MarginLeft+pdf.ContentWidth, 46)
}

func (l *invoiceLayout) drawCustomerBlock(c entity.CustomerInfo) {
	l.canvas.SetFont("Helvetica", "B", 11)
	l.canvas.SetTextColor(textColor)
	l.canvas.Text(pdf.MarginLeft, l.cur.y, "Bill To:")
	l.cur.advance(lineH)

	l.canvas.SetFont("Helvetica", "", 10)
	l.canvas.Text(pdf.MarginLeft, l.cur.y, c.Name)
	l.cur.advance(lineH)
	l.canvas.Text(pdf.MarginLeft, l.cur.y, "Email: "+c.Email)
	l.cur.advance(lineH)
	l.canvas.Text(pdf.MarginLeft, l.cur.y, "Phone: "+c.Phone)
	l.cur.advance(lineH)

	if c.Address != "" {
		// The label appears on the first segment only; each segment
		// advances the cursor by one full line.
		for i, seg := range l.canvas.SplitText(c.Address, addressMaxW) {
			if i == 0 {
				seg = "Address: " + seg
			}
			l.canvas.Text(pdf.MarginLeft, l.cur.y, seg)
			l.cur.advance(lineH)
		}
	}

	l.cur.advance(4)
}

func (l *invoiceLayout) drawTableHeader() {
	l.canvas.SetFillColor(bandFillColor)
	l.canvas.FillRect(pdf.MarginLeft, l.cur.y, pdf.ContentWidth, tableHeaderH)

	captionY := l.cur.y + 5.5
	l.canvas.SetFont("Helvetica", "B", 10)
	l.canvas.SetTextColor(textColor)
	l.canvas.Text(colItemX, captionY, "Item")
	l.canvas.TextRight(colQtyX, captionY, "Qty")
	l.canvas.TextRight(colPriceX, captionY, "Price")
	l.canvas.TextRight(colTotalX, captionY, "Total")

	l.cur.advance(tableHeaderH + 2)
}

func (l *invoiceLayout) drawRow(item entity.LineItem) {
	base := l.cur.y + 5

	l.canvas.SetFont("Helvetica", "", 10)
	l.canvas.SetTextColor(textColor)
	l.canvas.Text(colItemX, base, truncateName(item.Name))
	l.canvas.TextRight(colQtyX, base, strconv.Itoa(item.Quantity))
	l.canvas.TextRight(colPriceX, base, formatMoney(item.UnitPrice))
	l.canvas.TextRight(colTotalX, base, formatMoney(item.LineTotal))

	subY := base
	l.canvas.SetFont("Helvetica", "", 8)
	l.canvas.SetTextColor(mutedColor)
	if item.Size != "" {
		subY += subLineH
		l.canvas.Text(colItemX+3, subY, "Size: "+item.Size)
	}
	if item.Color != "" {
		subY += subLineH
		l.canvas.Text(colItemX+3, subY, "Color: "+item.Color)
	}

	// Sub-lines may push the row past its minimum height; rows must never
	// overlap regardless of how many optional fields are present.
	rowH := (subY - l.cur.y) + 3
	if rowH < minRowH {
		rowH = minRowH
	}
	l.cur.advance(rowH)
}

func (l *invoiceLayout) drawSeparator() {
	l.canvas.SetDrawColor(mutedColor)
	l.canvas.Line(pdf.MarginLeft, l.cur.y, pdf.MarginLeft+pdf.ContentWidth, l.cur.y)
	l.cur.advance(6)
}

func (l *invoiceLayout) drawTotals(t entity.InvoiceTotals) {
	const labelX = 130.0

	l.canvas.SetFont("Helvetica", "", 10)
	l.canvas.SetTextColor(textColor)

	l.canvas.Text(labelX, l.cur.y, "Subtotal:")
	l.canvas.TextRight(colTotalX, l.cur.y, formatMoney(t.Subtotal))
	l.cur.advance(lineH)

	shipping := formatMoney(t.ShippingCost)
	if t.ShippingCost.IsZero() {
		shipping = "FREE"
	}
	l.canvas.Text(labelX, l.cur.y, "Shipping:")
	l.canvas.TextRight(colTotalX, l.cur.y, shipping)
	l.cur.advance(lineH)

	l.canvas.Text(labelX, l.cur.y, "Tax:")
	l.canvas.TextRight(colTotalX, l.cur.y, formatMoney(t.Tax))
	l.cur.advance(lineH)

	// Grand total gets a highlighted band with inverted text.
	const bandX = labelX - 4
	l.canvas.SetFillColor(brandColor)
	l.canvas.FillRect(bandX, l.cur.y-1, colTotalX+4-bandX, 9)
	l.canvas.SetFont("Helvetica", "B", 11)
	l.canvas.SetTextColor(whiteColor)
	l.canvas.Text(labelX, l.cur.y+5, "Total:")
	l.canvas.TextRight(colTotalX, l.cur.y+5, formatMoney(t.GrandTotal))
	l.cur.advance(14)
}

func (l *invoiceLayout) drawPaymentStatus(inv entity.NormalizedOrder) {
	l.canvas.SetFont("Helvetica", "", 10)
	l.canvas.SetTextColor(textColor)
	l.canvas.Text(pdf.MarginLeft, l.cur.y, "Payment Method: "+inv.PaymentMethod)
	l.cur.advance(lineH)
	l.canvas.Text(pdf.MarginLeft, l.cur.y, "Order Status: "+inv.Status)
	l.cur.advance(lineH)
}

func (l *invoiceLayout) drawFooter() {
	centerX := pdf.PageWidth / 2
	l.canvas.SetFont("Helvetica", "", 8)
	l.canvas.SetTextColor(mutedColor)
	l.canvas.TextCenter(centerX, 278, "Thank you for shopping with ElaRose!")
	l.canvas.TextCenter(centerX, 283, "Questions? Contact us at support@elarose.com")
	l.canvas.TextCenter(centerX, 288, "This is a computer-generated invoice and requires no signature.")
}

// truncateName bounds a product name to the item column, appending an
// ellipsis when it exceeds the visible limit.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameRunes {
		return name
	}
	return string(runes[:truncNameRunes]) + "..."
}

// formatMoney renders an amount with the fixed currency prefix and exactly
// two decimal places.
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
