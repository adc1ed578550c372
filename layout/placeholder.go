package layout

import (
	"strings"
	"unicode/utf8"
)

// Marker 是题干中标记拖放目标的占位符。
const (
	Marker    = "_____"
	MarkerLen = 5
)

// TargetReplacement 是把选中文本替换为目标时插入的文本（两侧各留一个空格）。
const TargetReplacement = " " + Marker + " "

// TokenizedLine 记录一行文本及其中所有占位符的位置。
type TokenizedLine struct {
	Index   int    // 0-based 行号
	Text    string // 原始行文本
	Length  int    // 字符数（rune）
	Markers []int  // 每个占位符起始位置（rune 偏移），互不重叠，从左到右
}

// HasMarkers 报告该行是否至少有一个占位符。
func (l TokenizedLine) HasMarkers() bool { return len(l.Markers) > 0 }

// MarkerCount 返回占位符个数 k。
func (l TokenizedLine) MarkerCount() int { return len(l.Markers) }

// EffectiveWidth 返回该行在 bound 个占位符绑定到宽度为 optionWidth 的选项后
// 的字符宽度：(raw − 5k) + bound·m + (k − bound)·5。bound 被限制在 [0, k]。
func (l TokenizedLine) EffectiveWidth(bound, optionWidth int) int {
	k := len(l.Markers)
	bound = min(max(bound, 0), k)
	return (l.Length - MarkerLen*k) + bound*optionWidth + (k-bound)*MarkerLen
}

// Tokenize 拆分文本并定位每行的占位符。连续 10 个下划线视为两个占位符，
// 7 个下划线视为一个占位符加两个普通字符。
func Tokenize(text string) []TokenizedLine {
	block := LiteralBlock(text)
	lines := make([]TokenizedLine, 0, len(block.Lines))
	for i, line := range block.Lines {
		lines = append(lines, TokenizeLine(i, line))
	}
	return lines
}

// TokenizeLine 定位单行中的占位符。
func TokenizeLine(index int, line string) TokenizedLine {
	tl := TokenizedLine{
		Index:  index,
		Text:   line,
		Length: utf8.RuneCountInString(line),
	}
	offset := 0 // byte offset
	for {
		i := strings.Index(line[offset:], Marker)
		if i < 0 {
			break
		}
		start := offset + i
		tl.Markers = append(tl.Markers, utf8.RuneCountInString(line[:start]))
		offset = start + len(Marker)
	}
	return tl
}

// ContainsMarker 报告文本中是否出现占位符。
func ContainsMarker(line string) bool { return strings.Contains(line, Marker) }

// FillMarkers 把每个占位符替换为 width 个下划线，用于最终出图：
// 目标在图片中的宽度与最宽的选项一致。width 不大于 0 时保持原样。
func FillMarkers(text string, width int) string {
	if width <= 0 {
		return text
	}
	return strings.ReplaceAll(text, Marker, strings.Repeat("_", width))
}
