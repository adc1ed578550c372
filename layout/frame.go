package layout

// BasicSize 返回普通题干图片的尺寸：(maxLen·Wc+2P) × (lines·Lh+2P)。
func BasicSize(m Metrics, block TextBlock) Size {
	return Size{
		Width:  m.TextWidth(block.MaxLineLength()),
		Height: m.TextHeight(block.LineCount()),
	}
}

// FixedFrame 规划固定行距的图片：第 i 行位于 (P, P+i·Lh)。
func FixedFrame(text string, width, height int, m Metrics) Frame {
	lines := SplitLines(text)
	f := newFrame(width, height, m, len(lines))
	y := m.Padding
	for _, line := range lines {
		f.Lines = append(f.Lines, FrameLine{Content: line, X: m.Padding, Y: y})
		y += m.LineHeight
	}
	return f
}

// VariableFrame 规划含目标的题干图片。含占位符的行先下移 P+3 再绘制，
// 之后光标前进 optionLines·Lh+P+3，为选项留出位置；其余行前进 Lh。
func VariableFrame(text string, width, height, optionLines int, m Metrics) Frame {
	lines := Tokenize(text)
	f := newFrame(width, height, m, len(lines))
	y := m.Padding
	for _, line := range lines {
		if line.HasMarkers() {
			y += m.SeparatorGap()
			f.Lines = append(f.Lines, FrameLine{Content: line.Text, X: m.Padding, Y: y})
			y += optionLines*m.LineHeight + m.SeparatorGap()
			continue
		}
		f.Lines = append(f.Lines, FrameLine{Content: line.Text, X: m.Padding, Y: y})
		y += m.LineHeight
	}
	return f
}

// WithFilledMarkers 返回把每个占位符替换为 width 个下划线后的副本。
// 行位置不变：间距已按原始占位符规划。
func (f Frame) WithFilledMarkers(width int) Frame {
	out := f
	out.Lines = make([]FrameLine, len(f.Lines))
	for i, line := range f.Lines {
		line.Content = FillMarkers(line.Content, width)
		out.Lines[i] = line
	}
	return out
}

func newFrame(width, height int, m Metrics, lines int) Frame {
	return Frame{
		Width:   width,
		Height:  height,
		Lines:   make([]FrameLine, 0, lines),
		Border:  m.Border,
		Metrics: m,
	}
}
