package renderer

import "github.com/ByLCY/exhibit/layout"

// Renderer 将画布规划输出为最终文件（PNG）。
// Render 返回编码后的图片字节以及可能的错误。
type Renderer interface {
	Render(frame layout.Frame) ([]byte, error)
}
