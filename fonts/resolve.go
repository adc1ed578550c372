package fonts

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
)

// candidates 按平台列出等宽字体的常见位置，排在前面的优先。
var candidates = map[string][]string{
	"darwin": {
		"/System/Library/Fonts/Supplemental/Courier New.ttf",
		"/Library/Fonts/Courier New.ttf",
	},
	"windows": {
		`C:\Windows\Fonts\cour.ttf`,
	},
	"linux": {
		"/usr/share/fonts/truetype/msttcorefonts/cour.ttf",
		"/usr/share/fonts/truetype/msttcorefonts/Courier_New.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/liberation-mono/LiberationMono-Regular.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/dejavu/DejaVuSansMono.ttf",
	},
}

// exists 可在测试中替换。
var exists = func(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Resolve 决定使用哪个字体：显式配置（路径或 builtin:mono）优先，
// 否则取 goos 平台上第一个存在的候选字体。
func Resolve(configured, goos string) (string, error) {
	if configured != "" {
		if isBuiltin(configured) {
			return Builtin, nil
		}
		path, err := homedir.Expand(configured)
		if err != nil {
			return "", fmt.Errorf("展开字体路径 %s 失败: %w", configured, err)
		}
		if !exists(path) {
			return "", fmt.Errorf("字体文件 %s 不存在: %w", path, ErrNotFound)
		}
		return path, nil
	}
	paths, ok := candidates[goos]
	if !ok {
		return "", fmt.Errorf("平台 %s 没有默认字体，请用 --font 指定: %w", goos, ErrNotFound)
	}
	for _, p := range paths {
		if exists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("平台 %s 上没有找到 Courier New 等宽字体（可用 --font builtin:mono）: %w", goos, ErrNotFound)
}
