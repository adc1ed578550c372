package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 15, 72, 1000}
	for _, pt := range samples {
		back := pt * PtToMm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

func TestDefaultMetricsFillItemWidth(t *testing.T) {
	m := DefaultMetrics()
	l := DefaultLimits()

	assert.Equal(t, 948, m.TextWidth(l.ExhibitMaxChars))
	assert.LessOrEqual(t, m.TextWidth(l.ExhibitMaxChars), l.DnDMaxWidth)
	assert.Equal(t, 590, m.TextHeight(l.ExhibitMaxLines))
	assert.Equal(t, 9, m.SeparatorGap())
	assert.Equal(t, 6, m.ColumnX(0))
	assert.Equal(t, 6+3*9, m.ColumnX(3))
	assert.InDelta(t, 15/PtToMm, m.FontSizePt(), 1e-9)
}
