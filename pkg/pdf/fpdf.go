package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

type fpdfCanvas struct {
	doc *fpdf.Fpdf
}

// NewA4Canvas creates a Canvas backed by a single-page A4 PDF document.
// Each invoice generation must use its own canvas instance.
func NewA4Canvas() Canvas {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(MarginLeft, MarginLeft, MarginLeft)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &fpdfCanvas{doc: doc}
}

func (c *fpdfCanvas) SetFont(family, style string, size float64) {
	c.doc.SetFont(family, style, size)
}

func (c *fpdfCanvas) SetTextColor(col RGB) {
	c.doc.SetTextColor(col.R, col.G, col.B)
}

func (c *fpdfCanvas) SetFillColor(col RGB) {
	c.doc.SetFillColor(col.R, col.G, col.B)
}

func (c *fpdfCanvas) SetDrawColor(col RGB) {
	c.doc.SetDrawColor(col.R, col.G, col.B)
}

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.doc.Text(x, y, s)
}

func (c *fpdfCanvas) TextRight(x, y float64, s string) {
	c.doc.Text(x-c.doc.GetStringWidth(s), y, s)
}

func (c *fpdfCanvas) TextCenter(x, y float64, s string) {
	c.doc.Text(x-c.doc.GetStringWidth(s)/2, y, s)
}

func (c *fpdfCanvas) FillRect(x, y, w, h float64) {
	c.doc.Rect(x, y, w, h, "F")
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.doc.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) SplitText(s string, width float64) []string {
	return c.doc.SplitText(s, width)
}

func (c *fpdfCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: failed to serialize document: %w", err)
	}
	return buf.Bytes(), nil
}
