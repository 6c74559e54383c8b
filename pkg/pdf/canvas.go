package pdf

// Page geometry in millimeters (A4 portrait).
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	MarginLeft   = 20.0
	ContentWidth = PageWidth - 2*MarginLeft
)

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Canvas is the abstract drawing surface consumed by the invoice layout.
// Coordinates are page units (mm) with the origin at the top-left corner.
type Canvas interface {
	// SetFont selects the font family, style ("", "B", "I") and point size
	// for subsequent text operations.
	SetFont(family, style string, size float64)
	// SetTextColor sets the color used for text.
	SetTextColor(c RGB)
	// SetFillColor sets the color used for filled rectangles.
	SetFillColor(c RGB)
	// SetDrawColor sets the color used for lines.
	SetDrawColor(c RGB)
	// Text draws s with its left edge at x and baseline at y.
	Text(x, y float64, s string)
	// TextRight draws s with its right edge at x and baseline at y.
	TextRight(x, y float64, s string)
	// TextCenter draws s centered on x with baseline at y.
	TextCenter(x, y float64, s string)
	// FillRect draws a filled rectangle using the current fill color.
	FillRect(x, y, w, h float64)
	// Line draws a straight line using the current draw color.
	Line(x1, y1, x2, y2 float64)
	// SplitText wraps s into segments no wider than width, using the
	// current font metrics.
	SplitText(s string, width float64) []string
	// Output serializes the accumulated drawing instructions into the
	// final document bytes. Any drawing error surfaces here.
	Output() ([]byte, error)
}
