package item

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/exhibit/layout"
	"github.com/ByLCY/exhibit/renderer"
)

// Artifact 是一张待写出的图片。
type Artifact struct {
	Path  string       `json:"path"`
	Slot  int          `json:"slot,omitempty"` // 选项图片的位置（1-based），题干为 0
	Frame layout.Frame `json:"frame"`
}

// OptionPath 由题干图片路径推导选项图片路径：去掉 .png 后缀（不区分大小写）
// 并追加 _option<N>.png。没有 .png 后缀时直接追加。
func OptionPath(exhibitPath string, slot int) string {
	base := exhibitPath
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".png") {
		base = strings.TrimSuffix(base, ext)
	}
	return fmt.Sprintf("%s_option%d.png", base, slot)
}

// Write 依次渲染并写出所有图片，返回已写出的路径。
// 任何一步失败立即返回，已写出的文件保留，会话状态不回滚。
func Write(r renderer.Renderer, artifacts []Artifact) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		data, err := r.Render(a.Frame)
		if err != nil {
			return written, fmt.Errorf("渲染 %s 失败: %w", a.Path, err)
		}
		if dir := filepath.Dir(a.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("创建输出目录失败: %w", err)
			}
		}
		if err := os.WriteFile(a.Path, data, 0o644); err != nil {
			return written, fmt.Errorf("写入图片 %s 失败: %w", a.Path, err)
		}
		written = append(written, a.Path)
	}
	return written, nil
}
