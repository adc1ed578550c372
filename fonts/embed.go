package fonts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/font/gofont/gomono"
)

// Builtin 指向内置的 Go Mono 等宽字体，在没有系统字体时也能出图。
const Builtin = "builtin:mono"

// ErrNotFound 表示平台上找不到可用的等宽字体。
var ErrNotFound = errors.New("未找到可用的等宽字体")

// Load 返回字体的字节数据。src 可写为 "builtin:mono"（或 "builtin:"/"embed:" 前缀）
// 或文件路径（支持 ~）。读取到的文件必须是字体文件。
func Load(src string) ([]byte, error) {
	if isBuiltin(src) {
		return gomono.TTF, nil
	}
	if src == "" {
		return nil, fmt.Errorf("字体路径为空")
	}
	path, err := homedir.Expand(src)
	if err != nil {
		return nil, fmt.Errorf("展开字体路径 %s 失败: %w", src, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	if !filetype.IsFont(data) {
		return nil, fmt.Errorf("%s 不是字体文件", path)
	}
	return data, nil
}

func isBuiltin(src string) bool {
	switch {
	case src == Builtin:
		return true
	case strings.HasPrefix(src, "builtin:"), strings.HasPrefix(src, "built-in:"), strings.HasPrefix(src, "embed:"):
		return true
	default:
		return false
	}
}
