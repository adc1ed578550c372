package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackOptionsColumns(t *testing.T) {
	m := DefaultMetrics()
	maxWidth := DefaultLimits().DnDMaxWidth
	tests := []struct {
		name     string
		width    int
		n        int
		wantCols int
		wantRows int
	}{
		{name: "narrow boxes use three columns", width: 102, n: 4, wantCols: 3, wantRows: 2},
		{name: "last width below (950-20)/3", width: 309, n: 3, wantCols: 3, wantRows: 1},
		{name: "(950-20)/3 itself drops to two columns", width: 310, n: 3, wantCols: 2, wantRows: 2},
		{name: "last width below (950-15)/2", width: 467, n: 5, wantCols: 2, wantRows: 3},
		{name: "wide boxes stack in one column", width: 468, n: 4, wantCols: 1, wantRows: 4},
		{name: "no options", width: 102, n: 0, wantCols: 3, wantRows: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := PackOptions(m, maxWidth, tt.n, Size{Width: tt.width, Height: 29})
			assert.Equal(t, tt.wantCols, area.Columns)
			assert.Equal(t, tt.wantRows, area.Rows)
			assert.Equal(t, tt.wantCols*(tt.width+5)+5, area.Size.Width)
			assert.Equal(t, tt.wantRows*(29+5)+5, area.Size.Height)
		})
	}
}

func TestPackOptionsProperties(t *testing.T) {
	m := DefaultMetrics()
	maxWidth := DefaultLimits().DnDMaxWidth
	for n := 1; n <= 10; n++ {
		prevCols := maxColumns
		for w := 0; w <= 1000; w++ {
			area := PackOptions(m, maxWidth, n, Size{Width: w, Height: 29})
			if area.Columns > prevCols {
				t.Fatalf("columns grew with width: n=%d w=%d cols=%d prev=%d", n, w, area.Columns, prevCols)
			}
			if area.Rows*area.Columns < n {
				t.Fatalf("grid too small: n=%d w=%d rows=%d cols=%d", n, w, area.Rows, area.Columns)
			}
			prevCols = area.Columns
		}
	}
}
