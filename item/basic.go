package item

import (
	"strings"

	"github.com/ByLCY/exhibit/layout"
)

// Basic 生成普通题干图片：一张图，尺寸由最长行与行数决定。
// 依次检查行宽、行数与输出路径，全部通过才返回待写出的图片。
func Basic(m layout.Metrics, l layout.Limits, text, dest string) (Artifact, error) {
	block := layout.NewTextBlock(text)
	if err := l.CheckExhibit(block); err != nil {
		return Artifact{}, err
	}
	if strings.TrimSpace(dest) == "" {
		return Artifact{}, &layout.Error{Kind: layout.KindNoDestinationSpecified}
	}
	size := layout.BasicSize(m, block)
	return Artifact{
		Path:  dest,
		Frame: layout.FixedFrame(strings.Join(block.Lines, "\n"), size.Width, size.Height, m),
	}, nil
}
