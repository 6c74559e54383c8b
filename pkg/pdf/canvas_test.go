package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestA4CanvasOutputIsPDF(t *testing.T) {
	c := NewA4Canvas()
	c.SetFont("Helvetica", "B", 12)
	c.Text(MarginLeft, 20, "ElaRose")

	data, err := c.Output()
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestA4CanvasSplitTextWrapsLongLines(t *testing.T) {
	c := NewA4Canvas()
	c.SetFont("Helvetica", "", 10)

	long := "Apartment 12B, 3456 Boulevard of Extremely Long Street Names, Springfield, Second Floor, Ring Twice"
	lines := c.SplitText(long, 60)
	assert.Greater(t, len(lines), 1, "long address should wrap into multiple segments")

	lines = c.SplitText("short", 60)
	assert.Len(t, lines, 1)
}

func TestPageGeometry(t *testing.T) {
	assert.Equal(t, 210.0, PageWidth)
	assert.Equal(t, 297.0, PageHeight)
	assert.Equal(t, 20.0, MarginLeft)
	assert.Equal(t, 170.0, ContentWidth)
	assert.Equal(t, PageWidth-2*MarginLeft, ContentWidth)
}
