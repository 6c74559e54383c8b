package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/elarose/elarose-api/internal/domain/entity"
	"github.com/elarose/elarose-api/pkg/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawOp records one canvas call so tests can assert on the emitted
// drawing instructions without a real PDF backend.
type drawOp struct {
	Kind string
	X, Y float64
	W, H float64
	Text string
}

type fakeCanvas struct {
	ops        []drawOp
	outputErr  error
	splitWidth int // rune count per segment returned by SplitText
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{splitWidth: 40}
}

func (f *fakeCanvas) record(op drawOp) {
	f.ops = append(f.ops, op)
}

func (f *fakeCanvas) SetFont(family, style string, size float64) {
	f.record(drawOp{Kind: "font", Text: fmt.Sprintf("%s/%s/%g", family, style, size)})
}

func (f *fakeCanvas) SetTextColor(c pdf.RGB) {
	f.record(drawOp{Kind: "textcolor", Text: fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)})
}

func (f *fakeCanvas) SetFillColor(c pdf.RGB) {
	f.record(drawOp{Kind: "fillcolor", Text: fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)})
}

func (f *fakeCanvas) SetDrawColor(c pdf.RGB) {
	f.record(drawOp{Kind: "drawcolor", Text: fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)})
}

func (f *fakeCanvas) Text(x, y float64, s string) {
	f.record(drawOp{Kind: "text", X: x, Y: y, Text: s})
}

func (f *fakeCanvas) TextRight(x, y float64, s string) {
	f.record(drawOp{Kind: "text-right", X: x, Y: y, Text: s})
}

func (f *fakeCanvas) TextCenter(x, y float64, s string) {
	f.record(drawOp{Kind: "text-center", X: x, Y: y, Text: s})
}

func (f *fakeCanvas) FillRect(x, y, w, h float64) {
	f.record(drawOp{Kind: "rect", X: x, Y: y, W: w, H: h})
}

func (f *fakeCanvas) Line(x1, y1, x2, y2 float64) {
	f.record(drawOp{Kind: "line", X: x1, Y: y1, W: x2, H: y2})
}

func (f *fakeCanvas) SplitText(s string, width float64) []string {
	runes := []rune(s)
	var lines []string
	for len(runes) > f.splitWidth {
		lines = append(lines, string(runes[:f.splitWidth]))
		runes = runes[f.splitWidth:]
	}
	return append(lines, string(runes))
}

func (f *fakeCanvas) Output() ([]byte, error) {
	if f.outputErr != nil {
		return nil, f.outputErr
	}
	return []byte(fmt.Sprintf("%v", f.ops)), nil
}

func (f *fakeCanvas) textOps() []drawOp {
	var out []drawOp
	for _, op := range f.ops {
		switch op.Kind {
		case "text", "text-right", "text-center":
			out = append(out, op)
		}
	}
	return out
}

func (f *fakeCanvas) findText(s string) (drawOp, bool) {
	for _, op := range f.textOps() {
		if op.Text == s {
			return op, true
		}
	}
	return drawOp{}, false
}

func renderOnFake(order entity.RawOrder, resp entity.OrderResponse) *fakeCanvas {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	inv := Normalize(order, resp, now)
	totals := ComputeTotals(inv.Items, order)
	canvas := newFakeCanvas()
	renderInvoice(canvas, inv, totals)
	return canvas
}

func TestRenderEmitsOneRowPerItem(t *testing.T) {
	order := entity.RawOrder{
		"items": []any{
			map[string]any{"productName": "Dress", "price": 10.0, "quantity": 1},
			map[string]any{"productName": "Scarf", "price": 20.0, "quantity": 2},
			map[string]any{"productName": "Belt", "price": 5.0, "quantity": 1},
		},
	}

	canvas := renderOnFake(order, nil)

	for _, name := range []string{"Dress", "Scarf", "Belt"} {
		_, found := canvas.findText(name)
		assert.True(t, found, "expected a row for %s", name)
	}

	_, found := canvas.findText("$55.00") // 10 + 40 + 5
	assert.True(t, found, "expected subtotal of the line totals")
}

func TestRenderTruncatesLongProductName(t *testing.T) {
	longName := "Embroidered Limited Edition Maxi Dress!!"
	require.Len(t, []rune(longName), 40)

	canvas := renderOnFake(entity.RawOrder{"productName": longName, "price": 1.0}, nil)

	want := string([]rune(longName)[:27]) + "..."
	require.Len(t, []rune(want), 30)
	_, found := canvas.findText(want)
	assert.True(t, found, "expected name truncated to 30 visible characters")

	_, full := canvas.findText(longName)
	assert.False(t, full, "full name must not be drawn")
}

func TestRenderShippingLabels(t *testing.T) {
	free := renderOnFake(entity.RawOrder{"price": 10.0, "shippingCost": 0}, nil)
	_, found := free.findText("FREE")
	assert.True(t, found, "zero shipping renders FREE")

	paid := renderOnFake(entity.RawOrder{"price": 10.0, "shippingCost": 4.5}, nil)
	_, found = paid.findText("$4.50")
	assert.True(t, found, "positive shipping renders as currency")
	_, found = paid.findText("FREE")
	assert.False(t, found)
}

func TestRenderGrandTotalTrustsExplicitAmount(t *testing.T) {
	order := entity.RawOrder{
		"items": []any{
			map[string]any{"productName": "Dress", "price": 25.0, "quantity": 2},
		},
		"totalAmount": 75.0,
	}

	canvas := renderOnFake(order, nil)

	_, found := canvas.findText("$75.00")
	assert.True(t, found, "grand total must echo the explicit amount")
}

func TestRenderAddressWrapping(t *testing.T) {
	address := "Apartment 12B, 3456 Boulevard of Extremely Long Street Names, Springfield"
	canvas := renderOnFake(entity.RawOrder{"address": address, "price": 1.0}, nil)

	var segments []drawOp
	for _, op := range canvas.textOps() {
		if op.Kind == "text" && op.X == pdf.MarginLeft &&
			(len(op.Text) >= 9 && op.Text[:9] == "Address: " || containsRun(address, op.Text)) {
			segments = append(segments, op)
		}
	}
	require.GreaterOrEqual(t, len(segments), 2, "long address must wrap")

	assert.Equal(t, "Address: ", segments[0].Text[:9], "label on first segment only")
	for _, seg := range segments[1:] {
		assert.NotContains(t, seg.Text, "Address:")
	}
	for i := 1; i < len(segments); i++ {
		assert.InDelta(t, lineH, segments[i].Y-segments[i-1].Y, 0.001, "each segment advances one line")
	}
}

// containsRun reports whether sub is a contiguous run of s.
func containsRun(s, sub string) bool {
	if sub == "" {
		return false
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestRenderPaymentAndStatusFallbacks(t *testing.T) {
	canvas := renderOnFake(entity.RawOrder{}, entity.OrderResponse{})

	_, found := canvas.findText("Payment Method: Cash on Delivery")
	assert.True(t, found)
	_, found = canvas.findText("Order Status: Confirmed")
	assert.True(t, found)
}

func TestRenderEmptyOrderPlaceholders(t *testing.T) {
	canvas := renderOnFake(entity.RawOrder{}, entity.OrderResponse{})

	for _, want := range []string{"Valued Customer", "Email: N/A", "Phone: N/A", "$0.00"} {
		_, found := canvas.findText(want)
		assert.True(t, found, "expected %q on the invoice", want)
	}
}

func TestRenderBlockOrderIsTopToBottom(t *testing.T) {
	order := entity.RawOrder{
		"items": []any{
			map[string]any{"productName": "Dress", "price": 10.0, "quantity": 1, "selectedSize": "M", "colorName": "Rose"},
		},
		"shippingCost": 5.0,
	}
	canvas := renderOnFake(order, nil)

	var headerBand, totalBand *drawOp
	for i := range canvas.ops {
		op := canvas.ops[i]
		if op.Kind == "rect" {
			if headerBand == nil {
				headerBand = &canvas.ops[i]
			} else {
				totalBand = &canvas.ops[i]
			}
		}
	}
	require.NotNil(t, headerBand, "table header band missing")
	require.NotNil(t, totalBand, "grand total band missing")
	assert.Greater(t, totalBand.Y, headerBand.Y, "cursor must only advance down the page")

	name, _ := canvas.findText("Dress")
	assert.Greater(t, name.Y, headerBand.Y)
	assert.Less(t, name.Y, totalBand.Y)
}

func TestRenderIsIdempotent(t *testing.T) {
	order := entity.RawOrder{
		"customerName": "Jane Doe",
		"items": []any{
			map[string]any{"productName": "Dress", "price": 10.0, "quantity": 1},
		},
	}
	resp := entity.OrderResponse{"orderId": "ORD-123"}

	first := renderOnFake(order, resp)
	second := renderOnFake(order, resp)

	assert.Equal(t, first.ops, second.ops, "identical input must emit identical drawing instructions")
}

func TestFakeCanvasOutputError(t *testing.T) {
	canvas := newFakeCanvas()
	canvas.outputErr = errors.New("boom")
	_, err := canvas.Output()
	assert.Error(t, err)
}
