package layout

import (
	"strings"
	"unicode/utf8"
)

// missingValue 是表格导入时空单元格带来的占位文本，按空文本处理。
const missingValue = "nan"

// TextBlock 是按换行拆分后的文本，每次测量都重新构造。
type TextBlock struct {
	Raw   string
	Lines []string
}

// NewTextBlock 规范化换行（CRLF → LF）并拆分行。空文本与缺失值没有任何行。
// 只用于测量导入的题干；作者写下的文本用 LiteralBlock。
func NewTextBlock(raw string) TextBlock {
	if isBlank(raw) {
		return TextBlock{Raw: raw}
	}
	return LiteralBlock(raw)
}

// LiteralBlock 与 NewTextBlock 相同，但不识别缺失值："NaN" 就是三个字符。
func LiteralBlock(raw string) TextBlock {
	return TextBlock{Raw: raw, Lines: SplitLines(raw)}
}

// SplitLines 规范化换行并拆分行，空文本没有任何行。
func SplitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

// LineCount 返回行数。
func (b TextBlock) LineCount() int { return len(b.Lines) }

// MaxLineLength 返回最长一行的字符数（按 rune 计，占位符按字面长度计）。
func (b TextBlock) MaxLineLength() int {
	longest := 0
	for _, line := range b.Lines {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return longest
}

// LineCount 等价于 NewTextBlock(text).LineCount()。
func LineCount(text string) int { return NewTextBlock(text).LineCount() }

// MaxLineLength 等价于 NewTextBlock(text).MaxLineLength()。
func MaxLineLength(text string) int { return NewTextBlock(text).MaxLineLength() }

func isBlank(text string) bool {
	return text == "" || strings.EqualFold(strings.TrimSpace(text), missingValue)
}
