package layout

// maxColumns 是选项网格的最大列数。
const maxColumns = 3

// PackOptions 为 n 个统一尺寸为 box 的选项框选择列数并计算网格占用。
//
// 列数贪心选择：选项框加上 cols+1 个间距能放进 maxWidth 时取最大的 cols（3、2、1），
// 即 3 列要求 w < (maxWidth−4G)/3，2 列要求 w < (maxWidth−3G)/2。
// 不会为减少留白而回退列数，这样逐个添加选项时排布保持稳定。
func PackOptions(m Metrics, maxWidth, n int, box Size) OptionArea {
	cols := 1
	for c := maxColumns; c > 1; c-- {
		if c*box.Width < maxWidth-(c+1)*m.Gutter {
			cols = c
			break
		}
	}
	rows := 0
	if n > 0 {
		rows = (n + cols - 1) / cols
	}
	return OptionArea{
		Count:   n,
		Columns: cols,
		Rows:    rows,
		Box:     box,
		Size: Size{
			Width:  cols*(box.Width+m.Gutter) + m.Gutter,
			Height: rows*(box.Height+m.Gutter) + m.Gutter,
		},
	}
}
